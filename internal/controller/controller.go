// Package controller implements the list-state controller behind each CRUD
// screen: it owns one entity type's in-memory collection, the filtered view
// derived from it, and the form buffer for the record being created or
// edited. One generic controller is instantiated per entity through a
// Config, replacing the per-screen copies of the original dashboard.
package controller

import (
	"context"
	"fmt"

	"simaru-admin/internal/domain"
	"simaru-admin/internal/source"
	"simaru-admin/internal/utils"
)

// FormValues holds the raw field values being typed for one record.
type FormValues map[string]string

// Config wires one entity type into the generic controller.
type Config[T any] struct {
	// Entity tags log lines and error messages: "rooms", "bookings", "users".
	Entity string

	ID     func(T) int64
	WithID func(T, int64) T

	// SearchText lists the field values the search box matches against.
	SearchText func(T) []string

	// StatusOf/WithStatus are set only for entities with an approval
	// status. DefaultStatus is the initial status filter; zero means the
	// entity is not status-filtered and the sentinel ALL is used.
	StatusOf      func(T) domain.Status
	WithStatus    func(T, domain.Status) T
	DefaultStatus domain.Status

	// ToForm pre-populates the buffer from an existing record for edit
	// mode, de-formatting derived fields back to editable raw form.
	ToForm func(T) FormValues
	// FromForm validates the buffer and assembles a record without an id.
	// editing distinguishes create-mode from edit-mode validation.
	FromForm func(values FormValues, editing bool) (T, error)

	// Derive, when set, runs after every field update for one-way derived
	// field population (the booking form copies the selected room's price).
	Derive func(values FormValues, field string)
}

// Controller owns one entity collection and its transient view state. It is
// not safe for concurrent use; like the screen it replaces, all transitions
// happen on one event loop.
type Controller[T any] struct {
	cfg Config[T]
	src source.Source[T]

	items  []T
	search string
	status domain.Status

	form    FormValues
	editID  int64
	editing bool
	open    bool

	notice string
}

func New[T any](cfg Config[T], src source.Source[T]) *Controller[T] {
	status := cfg.DefaultStatus
	if cfg.StatusOf == nil || status == "" {
		status = domain.StatusAll
	}
	return &Controller[T]{
		cfg:    cfg,
		src:    src,
		status: status,
		form:   FormValues{},
	}
}

// Reload replaces the collection from the source. On failure the collection
// renders empty and the error lands in the notice area; an empty result and
// a failed load are indistinguishable to the view on purpose.
func (c *Controller[T]) Reload(ctx context.Context) error {
	items, err := c.src.Load(ctx)
	if err != nil {
		c.items = nil
		c.notice = err.Error()
		utils.LogEvent("", c.cfg.Entity, "load", "error: "+err.Error())
		return err
	}
	c.items = items
	return nil
}

// Items exposes the authoritative collection, unfiltered.
func (c *Controller[T]) Items() []T { return c.items }

func (c *Controller[T]) Search() string { return c.search }

func (c *Controller[T]) SetSearch(term string) { c.search = term }

func (c *Controller[T]) StatusFilter() domain.Status { return c.status }

// SetStatusFilter restricts the view to one status; StatusAll disables the
// restriction.
func (c *Controller[T]) SetStatusFilter(s domain.Status) error {
	if c.cfg.StatusOf == nil {
		return domain.ValidationError{Msg: c.cfg.Entity + " tidak memiliki status"}
	}
	if s != domain.StatusAll && !s.Valid() {
		return domain.ValidationError{Field: "status", Msg: "nilai status tidak dikenal"}
	}
	c.status = s
	return nil
}

// View derives the visible subset for rendering without mutating the
// collection.
func (c *Controller[T]) View() []T {
	return FilterView(c.items, c.search, c.status, c.cfg)
}

// Notice returns the last surfaced message; ClearNotice dismisses it.
func (c *Controller[T]) Notice() string { return c.notice }
func (c *Controller[T]) ClearNotice()  { c.notice = "" }

// FilterView is the pure filter behind View: search term and status compose
// by conjunction, matching is a case-insensitive substring test over the
// configured fields, order is preserved, the input is never mutated.
func FilterView[T any](items []T, search string, status domain.Status, cfg Config[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if cfg.StatusOf != nil && status != domain.StatusAll && cfg.StatusOf(item) != status {
			continue
		}
		if search != "" && !matchesTerm(cfg.SearchText(item), search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesTerm(fields []string, term string) bool {
	for _, f := range fields {
		if utils.ContainsFold(f, term) {
			return true
		}
	}
	return false
}

// NextID assigns ids the way the dashboard always has: max existing plus
// one, or 1 for an empty collection. Two creates racing against the same
// snapshot can collide; that is the documented business rule, not a bug to
// fix here.
func NextID[T any](items []T, id func(T) int64) int64 {
	if len(items) == 0 {
		return 1
	}
	max := id(items[0])
	for _, item := range items[1:] {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}

// BeginCreate opens the form buffer empty, in create mode.
func (c *Controller[T]) BeginCreate() {
	c.form = FormValues{}
	c.editing = false
	c.editID = 0
	c.open = true
}

// BeginEdit pre-populates the buffer from the id-matched record.
func (c *Controller[T]) BeginEdit(id int64) error {
	for _, item := range c.items {
		if c.cfg.ID(item) == id {
			c.form = c.cfg.ToForm(item)
			c.editing = true
			c.editID = id
			c.open = true
			return nil
		}
	}
	return domain.NotFoundError{Resource: c.cfg.Entity, ID: id}
}

// SetField replaces exactly one named attribute of the buffer, then runs
// the entity's derive hook (if any) so one-way derived fields populate.
func (c *Controller[T]) SetField(name, value string) {
	c.form[name] = value
	if c.cfg.Derive != nil {
		c.cfg.Derive(c.form, name)
	}
}

func (c *Controller[T]) Field(name string) string { return c.form[name] }

func (c *Controller[T]) Editing() bool { return c.editing }

func (c *Controller[T]) FormOpen() bool { return c.open }

// CloseForm abandons the buffer without submitting.
func (c *Controller[T]) CloseForm() {
	c.form = FormValues{}
	c.editing = false
	c.editID = 0
	c.open = false
}

// Submit validates the buffer and applies the create or update. Validation
// failure leaves the buffer and collection untouched. On success the buffer
// resets to create mode and the editor closes; the mutation message, when
// the server sends one, is surfaced in the notice area.
func (c *Controller[T]) Submit(ctx context.Context) error {
	record, err := c.cfg.FromForm(c.form, c.editing)
	if err != nil {
		return err
	}

	var msg string
	if c.editing {
		record = c.cfg.WithID(record, c.editID)
		msg, err = c.src.Update(ctx, c.editID, record)
		if err != nil {
			c.notice = err.Error()
			return err
		}
		if err := c.settle(ctx, func() { c.replace(c.editID, record) }); err != nil {
			return err
		}
		utils.LogEvent("", c.cfg.Entity, "update", fmt.Sprintf("id=%d", c.editID))
	} else {
		id := NextID(c.items, c.cfg.ID)
		record = c.cfg.WithID(record, id)
		msg, err = c.src.Create(ctx, record)
		if err != nil {
			c.notice = err.Error()
			return err
		}
		if err := c.settle(ctx, func() { c.items = append(c.items, record) }); err != nil {
			return err
		}
		utils.LogEvent("", c.cfg.Entity, "create", fmt.Sprintf("id=%d", id))
	}

	if msg != "" {
		c.notice = msg
	}
	c.CloseForm()
	return nil
}

// Delete removes the id-matched record, but only past the explicit
// confirmation gate: confirmed=false is a no-op, never an error.
func (c *Controller[T]) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return nil
	}
	msg, err := c.src.Delete(ctx, id)
	if err != nil {
		c.notice = err.Error()
		return err
	}
	if err := c.settle(ctx, func() { c.remove(id) }); err != nil {
		return err
	}
	if msg != "" {
		c.notice = msg
	}
	utils.LogEvent("", c.cfg.Entity, "delete", fmt.Sprintf("id=%d", id))
	return nil
}

// SetStatus applies an Approve/Reject action: a partial update touching
// only the status attribute. Transitions are unconstrained; any status can
// follow any other.
func (c *Controller[T]) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	if c.cfg.StatusOf == nil || c.cfg.WithStatus == nil {
		return domain.ValidationError{Msg: c.cfg.Entity + " tidak memiliki status"}
	}
	if !status.Valid() {
		return domain.ValidationError{Field: "status", Msg: "nilai status tidak dikenal"}
	}

	var updated T
	found := false
	for _, item := range c.items {
		if c.cfg.ID(item) == id {
			updated = c.cfg.WithStatus(item, status)
			found = true
			break
		}
	}
	if !found {
		return domain.NotFoundError{Resource: c.cfg.Entity, ID: id}
	}

	msg, err := c.src.Update(ctx, id, updated)
	if err != nil {
		c.notice = err.Error()
		return err
	}
	if err := c.settle(ctx, func() { c.replace(id, updated) }); err != nil {
		return err
	}
	if msg != "" {
		c.notice = msg
	}
	utils.LogEvent("", c.cfg.Entity, "set_status", fmt.Sprintf("id=%d status=%s", id, status))
	return nil
}

// settle finishes a successful mutation: refetch from sources that own the
// authoritative copy, or apply the local patch otherwise. The refetch path
// deliberately discards local knowledge of the mutation, so its visible
// effect is only guaranteed once the reload resolves.
func (c *Controller[T]) settle(ctx context.Context, patch func()) error {
	if c.src.RefetchAfterMutation() {
		return c.Reload(ctx)
	}
	patch()
	return nil
}

func (c *Controller[T]) replace(id int64, record T) {
	for i, item := range c.items {
		if c.cfg.ID(item) == id {
			c.items[i] = record
			return
		}
	}
}

func (c *Controller[T]) remove(id int64) {
	out := c.items[:0]
	for _, item := range c.items {
		if c.cfg.ID(item) != id {
			out = append(out, item)
		}
	}
	c.items = out
}

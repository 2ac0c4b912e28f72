package controller

import (
	"strconv"

	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
	"simaru-admin/internal/source"
	"simaru-admin/internal/utils"
)

// NewRooms builds the room screen's controller. The view starts restricted
// to APPROVED rooms; new rooms enter as PENDING until approved.
func NewRooms(src source.Source[models.Room]) *Controller[models.Room] {
	return New(RoomConfig(), src)
}

func RoomConfig() Config[models.Room] {
	return Config[models.Room]{
		Entity:        "rooms",
		DefaultStatus: domain.StatusApproved,
		ID:            func(r models.Room) int64 { return r.ID },
		WithID: func(r models.Room, id int64) models.Room {
			r.ID = id
			return r
		},
		StatusOf: func(r models.Room) domain.Status { return r.Status },
		WithStatus: func(r models.Room, s domain.Status) models.Room {
			r.Status = s
			return r
		},
		SearchText: func(r models.Room) []string {
			return []string{r.Name, r.Description, r.Category, r.Price, string(r.Status)}
		},
		ToForm: func(r models.Room) FormValues {
			return FormValues{
				"name":        r.Name,
				"description": r.Description,
				"capacity":    strconv.Itoa(r.Capacity),
				"category":    r.Category,
				"categoryId":  formatID(r.CategoryID),
				"price":       utils.StripRupiah(r.Price),
				"status":      string(r.Status),
			}
		},
		FromForm: roomFromForm,
	}
}

func roomFromForm(values FormValues, editing bool) (models.Room, error) {
	var room models.Room

	name := utils.NormalizeSpace(values["name"])
	if name == "" {
		return room, domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	capRaw := utils.TrimOrEmpty(values["capacity"])
	if capRaw == "" {
		return room, domain.ValidationError{Field: "capacity", Msg: "wajib diisi"}
	}
	capacity, err := strconv.Atoi(capRaw)
	if err != nil || capacity <= 0 {
		return room, domain.ValidationError{Field: "capacity", Msg: "harus bilangan bulat positif"}
	}
	category := utils.TrimOrEmpty(values["category"])
	categoryID, _ := strconv.ParseInt(utils.TrimOrEmpty(values["categoryId"]), 10, 64)
	if category == "" && categoryID == 0 {
		return room, domain.ValidationError{Field: "category", Msg: "wajib diisi"}
	}
	if utils.TrimOrEmpty(values["price"]) == "" {
		return room, domain.ValidationError{Field: "price", Msg: "wajib diisi"}
	}

	status := domain.Status(utils.TrimOrEmpty(values["status"]))
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return room, domain.ValidationError{Field: "status", Msg: "nilai status tidak dikenal"}
	}

	room = models.Room{
		Name:        name,
		Description: utils.TrimOrEmpty(values["description"]),
		Capacity:    capacity,
		Category:    category,
		CategoryID:  categoryID,
		Price:       utils.NormalizeRupiah(values["price"]),
		Status:      status,
	}
	return room, nil
}

// RoomByName finds a room by exact display name; the booking form's derive
// hook reads prices through it.
func RoomByName(rooms []models.Room, name string) (models.Room, bool) {
	for _, r := range rooms {
		if r.Name == name {
			return r, true
		}
	}
	return models.Room{}, false
}

// DistinctCategories lists the category names present in a fixture-loaded
// collection, in first-seen order, for the room form's choices.
func DistinctCategories(rooms []models.Room) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range rooms {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		out = append(out, r.Category)
	}
	return out
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

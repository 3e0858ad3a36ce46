package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/storedocs/storedocs/core"
)

// seed fills an empty database with example users, documents and calendar
// events, so a fresh checkout has something to look at.
func seed(db *core.CoreDB) {

	var users = []struct {
		name string
		role core.Role
	}{
		{"ana", core.Corporate},
		{"luis", core.CorporatePlus},
		{"marta", core.StoreStaff},
		{"carmen", core.Supervisor},
	}
	for _, u := range users {
		if err := db.InsertUser(u.name, u.role); err != nil {
			log.Printf("error creating user %s: %v", u.name, err)
		}
	}

	var now = time.Now()

	var documents = []*core.Document{
		{
			Title:            "Política de devoluciones",
			Content:          "## Devoluciones\n\nLas devoluciones se aceptan dentro de los 30 días con el ticket de compra.",
			Category:         "Políticas",
			Tags:             []string{"devoluciones", "tienda"},
			Author:           "luis",
			LastModified:     now.Add(-72 * time.Hour),
			Status:           core.StatusPublished,
			Priority:         core.PriorityHigh,
			RequiresEvidence: true,
			TargetGroups:     []core.Role{core.StoreStaff, core.Supervisor},
		},
		{
			Title:        "Manual de apertura de tienda",
			Content:      "1. Desactivar la alarma.\n2. Encender las luces.\n3. Contar la caja.",
			Category:     "Operaciones",
			Tags:         []string{"apertura", "rutina"},
			Author:       "carmen",
			LastModified: now.Add(-48 * time.Hour),
			Status:       core.StatusPublished,
			Priority:     core.PriorityNormal,
			TargetGroups: []core.Role{core.StoreStaff},
		},
		{
			Title:        "Campaña de rebajas de verano",
			Content:      "Materiales y calendario de la campaña de rebajas. **Confidencial** hasta su publicación.",
			Category:     "Marketing",
			Tags:         []string{"rebajas", "campaña"},
			Author:       "luis",
			LastModified: now.Add(-24 * time.Hour),
			Status:       core.StatusPublished,
			Priority:     core.PriorityNormal,
			TargetGroups: []core.Role{core.Corporate, core.CorporatePlus, core.Supervisor},
		},
		{
			Title:        "Borrador: protocolo de inventario",
			Content:      "Primer borrador del protocolo de inventario trimestral.",
			Category:     "Operaciones",
			Tags:         []string{"inventario"},
			Author:       "luis",
			LastModified: now.Add(-2 * time.Hour),
			Status:       core.StatusDraft,
			Priority:     core.PriorityNormal,
			TargetGroups: []core.Role{core.StoreStaff, core.Supervisor},
		},
	}
	for _, d := range documents {
		d.ID = uuid.NewString()
		d.EvidenceFiles = map[string][]string{}
		d.Favorites = map[string]bool{}
		if err := db.DocumentDB.InsertDocument(d); err != nil {
			log.Printf("error creating document %s: %v", d.Title, err)
		}
	}

	var events = []*core.CalendarEvent{
		{
			ID:          uuid.NewString(),
			Dates:       []time.Time{time.Date(now.Year(), 12, 24, 0, 0, 0, 0, time.UTC), time.Date(now.Year(), 12, 25, 0, 0, 0, 0, time.UTC)},
			Title:       "Navidad",
			Kind:        core.EventInactive,
			Description: "Tiendas cerradas",
			CreatedBy:   "carmen",
			Color:       "#6c757d",
		},
		{
			ID:          uuid.NewString(),
			Dates:       []time.Time{time.Date(now.Year(), 7, 1, 0, 0, 0, 0, time.UTC)},
			Title:       "Inicio de rebajas",
			Kind:        core.EventImportant,
			Description: "Comienza la campaña de rebajas de verano",
			CreatedBy:   "carmen",
			Color:       "#dc3545",
		},
	}
	for _, ev := range events {
		if err := db.CalendarDB.InsertEvent(ev); err != nil {
			log.Printf("error creating event %s: %v", ev.Title, err)
		}
	}

	log.Printf("seeded %d users, %d documents and %d calendar events", len(users), len(documents), len(events))
}

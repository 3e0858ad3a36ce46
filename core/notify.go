package core

import (
	"fmt"
	"log"
)

// A Mailer delivers a notification to a user. The core fires and forgets,
// delivery failures never fail the triggering operation.
type Mailer interface {
	Send(to, subject, message string) error
}

// notifySupervisor tells the assigned supervisor that a document awaits
// review. A delivery failure is logged and does not fail the operation.
func (c *CoreDB) notifySupervisor(d *Document) {
	if c.Mailer == nil || d.AssignedSupervisor == "" {
		return
	}
	err := c.Mailer.Send(
		d.AssignedSupervisor,
		"New document for review",
		fmt.Sprintf("%s has submitted the document %q for your review.", d.ReviewedBy, d.Title),
	)
	if err != nil {
		log.Printf("could not notify %s about document %s: %v", d.AssignedSupervisor, d.ID, err)
	}
}

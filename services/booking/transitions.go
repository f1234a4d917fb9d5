package booking

import "jobmate/models"

// Action is a status-transition command on a booking.
type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

// transitionRule defines one row of the transition table: the status the
// booking must currently hold (empty means any), the status it moves to, and
// who may perform it.
type transitionRule struct {
	required        models.BookingStatus
	next            models.BookingStatus
	customerAllowed bool
	employeeAllowed bool
}

var transitionTable = map[Action]transitionRule{
	ActionAccept:   {required: models.StatusPending, next: models.StatusAccepted, employeeAllowed: true},
	ActionReject:   {required: models.StatusPending, next: models.StatusRejected, employeeAllowed: true},
	ActionStart:    {required: models.StatusAccepted, next: models.StatusInProgress, employeeAllowed: true},
	ActionComplete: {required: models.StatusInProgress, next: models.StatusCompleted, employeeAllowed: true},
	ActionCancel:   {next: models.StatusCancelled, customerAllowed: true, employeeAllowed: true},
}

// ruleFor looks up the transition rule for an action. Unknown actions are
// rejected at the boundary.
func ruleFor(action Action) (transitionRule, error) {
	rule, ok := transitionTable[action]
	if !ok {
		return transitionRule{}, NewInvalidActionError(string(action))
	}
	return rule, nil
}

// checkActor verifies the acting user against the rule before any state is
// touched.
func checkActor(rule transitionRule, action Action, booking *models.Booking, actor *models.User) error {
	if rule.employeeAllowed && actor.ID == booking.EmployeeID {
		return nil
	}
	if rule.customerAllowed && actor.ID == booking.CustomerID {
		return nil
	}
	return NewPermissionError("you are not allowed to " + string(action) + " this booking")
}

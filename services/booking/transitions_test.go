package booking

import (
	"testing"

	"jobmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleFor(t *testing.T) {
	t.Run("known actions", func(t *testing.T) {
		cases := []struct {
			action   Action
			required models.BookingStatus
			next     models.BookingStatus
		}{
			{ActionAccept, models.StatusPending, models.StatusAccepted},
			{ActionReject, models.StatusPending, models.StatusRejected},
			{ActionStart, models.StatusAccepted, models.StatusInProgress},
			{ActionComplete, models.StatusInProgress, models.StatusCompleted},
			{ActionCancel, "", models.StatusCancelled},
		}
		for _, tc := range cases {
			rule, err := ruleFor(tc.action)
			require.NoError(t, err, tc.action)
			assert.Equal(t, tc.required, rule.required, tc.action)
			assert.Equal(t, tc.next, rule.next, tc.action)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := ruleFor(Action("approve"))
		require.Error(t, err)
		assert.Equal(t, CodeInvalidAction, CodeOf(err))
	})
}

func TestCheckActor(t *testing.T) {
	booking := &models.Booking{CustomerID: "cust-1", EmployeeID: "emp-1"}
	customer := &models.User{ID: "cust-1", Role: models.RoleCustomer}
	employee := &models.User{ID: "emp-1", Role: models.RoleEmployee}
	stranger := &models.User{ID: "other", Role: models.RoleCustomer}

	accept, err := ruleFor(ActionAccept)
	require.NoError(t, err)
	cancel, err := ruleFor(ActionCancel)
	require.NoError(t, err)

	t.Run("employee may accept", func(t *testing.T) {
		assert.NoError(t, checkActor(accept, ActionAccept, booking, employee))
	})

	t.Run("customer may not accept", func(t *testing.T) {
		err := checkActor(accept, ActionAccept, booking, customer)
		assert.Equal(t, CodePermission, CodeOf(err))
	})

	t.Run("either party may cancel", func(t *testing.T) {
		assert.NoError(t, checkActor(cancel, ActionCancel, booking, customer))
		assert.NoError(t, checkActor(cancel, ActionCancel, booking, employee))
	})

	t.Run("stranger may do nothing", func(t *testing.T) {
		err := checkActor(cancel, ActionCancel, booking, stranger)
		assert.Equal(t, CodePermission, CodeOf(err))
	})
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, models.StatusRejected.Terminal())
	assert.True(t, models.StatusCompleted.Terminal())
	assert.True(t, models.StatusCancelled.Terminal())
	assert.False(t, models.StatusPending.Terminal())
	assert.False(t, models.StatusAccepted.Terminal())
	assert.False(t, models.StatusInProgress.Terminal())
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"drivebook/internal/domain/booking"
	"drivebook/internal/domain/course"
	"drivebook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Nil(t, actual.UserID())
		assert.Equal(t, b.CourseID, actual.CourseID())
		assert.Equal(t, "2024-06-01", actual.SlotDate())
		assert.Equal(t, b.Now, actual.SubmittedAt())
		assert.Equal(t, "pay_test_001", actual.TransactionID())
		assert.False(t, actual.PaymentVerified())
	})

	t.Run("missing slot", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Slot = course.Slot{}
		}).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrMissingSlot)
	})

	t.Run("missing transaction id", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.TransactionID = ""
		}).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrMissingTransactionID)
	})

	t.Run("form data is copied, not aliased", func(t *testing.T) {
		data := map[string]string{"Full Name": "Anand Kumar"}
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.FormData = data
		}).BuildDomain()
		require.NoError(t, err)

		data["Full Name"] = "Someone Else"
		assert.Equal(t, "Anand Kumar", actual.FormData()["Full Name"])
	})
}

func TestHolderName(t *testing.T) {
	cases := []struct {
		name     string
		formData map[string]string
		expected string
	}{
		{
			name:     "full name key wins",
			formData: map[string]string{"Full Name": "Anand Kumar", "Name": "A. Kumar"},
			expected: "Anand Kumar",
		},
		{
			name:     "falls back to name key",
			formData: map[string]string{"Name": "A. Kumar"},
			expected: "A. Kumar",
		},
		{
			name:     "no usable name falls back to guest",
			formData: map[string]string{"Phone": "9876543210"},
			expected: booking.GuestName,
		},
		{
			name:     "empty full name is skipped",
			formData: map[string]string{"Full Name": "", "Name": "A. Kumar"},
			expected: "A. Kumar",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.FormData = tc.formData
			}).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual.HolderName())
		})
	}
}

func TestVerifyPayment(t *testing.T) {
	actual := booking.ReconstructBooking(
		uuid.New(), nil, uuid.New(), "Two Wheeler Basics", uuid.New(),
		"2024-06-01", "09:00", "10:00",
		map[string]string{}, time.Now(), "pay_test_001", false,
	)

	actual.VerifyPayment()
	assert.True(t, actual.PaymentVerified())

	actual.VerifyPayment()
	assert.True(t, actual.PaymentVerified())
}

package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve(t *testing.T) {
	ctx := context.Background()

	input := ReserveInput{
		Treatment: "Cleaning",
		Date:      "2024-05-15",
		Patient:   "a@x.com",
		Time:      "09:00",
	}

	t.Run("creates a new unpaid booking", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewReserve(repo, nil)

		result, err := uc.Execute(ctx, input)

		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.False(t, result.Booking.Paid)
		assert.Empty(t, result.Booking.TransactionID)
		assert.Equal(t, "Cleaning", result.Booking.Treatment)
		assert.False(t, result.Booking.ID.IsZero())
	})

	t.Run("existing tuple returns the existing booking, not an error", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewReserve(repo, nil)

		first, err := uc.Execute(ctx, input)
		require.NoError(t, err)

		second, err := uc.Execute(ctx, input)
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, first.Booking.ID, second.Booking.ID)
	})

	t.Run("same patient may book a different time", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewReserve(repo, nil)

		_, err := uc.Execute(ctx, input)
		require.NoError(t, err)

		other := input
		other.Time = "10:00"
		result, err := uc.Execute(ctx, other)

		require.NoError(t, err)
		assert.True(t, result.Created)
	})

	t.Run("patient email is normalized into the tuple", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewReserve(repo, nil)

		_, err := uc.Execute(ctx, input)
		require.NoError(t, err)

		shouted := input
		shouted.Patient = "A@X.COM"
		result, err := uc.Execute(ctx, shouted)

		require.NoError(t, err)
		assert.False(t, result.Created)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewReserve(repo, nil)

		bad := input
		bad.Date = "May 15, 2024"
		_, err := uc.Execute(ctx, bad)

		assert.Error(t, err)
	})

	t.Run("concurrent identical reserves accept exactly one", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewReserve(repo, nil)

		const n = 20
		results := make([]*ReserveResult, n)

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				result, err := uc.Execute(ctx, input)
				assert.NoError(t, err)
				results[i] = result
			}(i)
		}
		wg.Wait()

		created := 0
		var winnerID string
		for _, r := range results {
			if r.Created {
				created++
				winnerID = r.Booking.ID.Hex()
			}
		}
		assert.Equal(t, 1, created)

		// Every loser got the winner's booking back.
		for _, r := range results {
			assert.Equal(t, winnerID, r.Booking.ID.Hex())
		}
	})
}

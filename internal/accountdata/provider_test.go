package accountdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tehl/bank-api/internal/connections"
	"github.com/Tehl/bank-api/internal/core"
)

func TestPassThroughProvider_GetAccountDetails(t *testing.T) {
	t.Parallel()

	t.Run("delegates_to_connection_and_returns_result_unchanged", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)

		expected := connections.NewSuccess(core.AccountDetails{
			AccountName:   "Current Account",
			AccountNumber: "00112233",
			SortCode:      "079046",
		})

		connection := connections.NewMockConnection(ctrl)
		connection.EXPECT().
			GetAccountDetails(gomock.Any(), "00112233").
			Return(expected).
			Times(1)

		provider := connections.NewMockProvider(ctrl)
		provider.EXPECT().BankID().Return("BizfiBank").AnyTimes()
		provider.EXPECT().CreateConnection().Return(connection).Times(1)

		manager := connections.NewManager()
		require.NoError(t, manager.RegisterProvider(provider))

		dataProvider := NewPassThroughProvider(manager)

		result, err := dataProvider.GetAccountDetails(context.Background(), "BizfiBank", "00112233")
		require.NoError(t, err)
		require.Equal(t, expected, result)
	})

	t.Run("unknown_bank_id_surfaces_as_local_error", func(t *testing.T) {
		t.Parallel()

		dataProvider := NewPassThroughProvider(connections.NewManager())

		_, err := dataProvider.GetAccountDetails(context.Background(), "NoSuchBank", "00112233")
		require.ErrorIs(t, err, connections.ErrUnknownBank)
	})

	t.Run("remote_failure_is_passed_through_not_converted", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)

		errorCode := int64(1001123)
		failure, buildErr := connections.NewFailure[core.AccountDetails](404, connections.OperationError{
			ErrorCode:    &errorCode,
			ErrorMessage: "Unable to find account",
		})
		require.NoError(t, buildErr)

		connection := connections.NewMockConnection(ctrl)
		connection.EXPECT().
			GetAccountDetails(gomock.Any(), "99887766").
			Return(failure).
			Times(1)

		provider := connections.NewMockProvider(ctrl)
		provider.EXPECT().BankID().Return("BizfiBank").AnyTimes()
		provider.EXPECT().CreateConnection().Return(connection).Times(1)

		manager := connections.NewManager()
		require.NoError(t, manager.RegisterProvider(provider))

		dataProvider := NewPassThroughProvider(manager)

		result, err := dataProvider.GetAccountDetails(context.Background(), "BizfiBank", "99887766")
		require.NoError(t, err)
		require.Equal(t, failure, result)
	})
}

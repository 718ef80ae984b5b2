package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jteck44/bkw-lab/config"
)

func TestNewAppliesDefaults(t *testing.T) {
	p, err := config.New(config.Literal{Type: config.LPN, K: 4, Tau: 0.1, A: 2, B: 2})
	require.NoError(t, err)
	require.Equal(t, 2, p.D())
	require.Equal(t, 5, p.QCap())
	require.Equal(t, 1, p.T1())
	require.Equal(t, 1, p.T2())
	require.Equal(t, 5, p.BoundB())
	require.Equal(t, 4, p.Dim())
}

func TestNewRejectsNonPositiveLPNDimension(t *testing.T) {
	_, err := config.New(config.Literal{Type: config.LPN, K: 0, Tau: 0.1, A: 1, B: 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestNewRejectsTauOutOfRange(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		_, err := config.New(config.Literal{Type: config.LPN, K: 2, Tau: -0.1, A: 1, B: 2})
		require.Error(t, err)
		require.True(t, errors.Is(err, config.ErrConfig))
	})
	t.Run("at 0.5", func(t *testing.T) {
		_, err := config.New(config.Literal{Type: config.LPN, K: 2, Tau: 0.5, A: 1, B: 2})
		require.Error(t, err)
		require.True(t, errors.Is(err, config.ErrConfig))
	})
}

func TestNewRejectsNonPositiveLWEDimension(t *testing.T) {
	_, err := config.New(config.Literal{Type: config.LWE, N: 0, Q: 7, A: 1, B: 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestNewRejectsQTooSmall(t *testing.T) {
	_, err := config.New(config.Literal{Type: config.LWE, N: 2, Q: 1, A: 1, B: 2})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestNewRejectsNegativeSigma(t *testing.T) {
	_, err := config.New(config.Literal{Type: config.LWE, N: 2, Q: 7, Sigma: -1, A: 1, B: 2})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestNewAcceptsZeroSigmaAsNoiseless(t *testing.T) {
	p, err := config.New(config.Literal{Type: config.LWE, N: 2, Q: 7, Sigma: 0, A: 1, B: 2})
	require.NoError(t, err)
	require.Equal(t, 0.0, p.Sigma())
}

func TestNewRejectsUnknownProblemType(t *testing.T) {
	_, err := config.New(config.Literal{Type: config.ProblemType(99), A: 1, B: 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestNewRejectsNonPositiveBlockShape(t *testing.T) {
	t.Run("a zero", func(t *testing.T) {
		_, err := config.New(config.Literal{Type: config.LPN, K: 4, Tau: 0.1, A: 0, B: 4})
		require.Error(t, err)
		require.True(t, errors.Is(err, config.ErrConfig))
	})
	t.Run("b zero", func(t *testing.T) {
		_, err := config.New(config.Literal{Type: config.LPN, K: 4, Tau: 0.1, A: 4, B: 0})
		require.Error(t, err)
		require.True(t, errors.Is(err, config.ErrConfig))
	})
}

func TestNewRejectsBlockShapeMismatchedWithDimension(t *testing.T) {
	_, err := config.New(config.Literal{Type: config.LPN, K: 5, Tau: 0.1, A: 2, B: 2})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestValidateSecretRejectsWrongLength(t *testing.T) {
	p, err := config.New(config.Literal{Type: config.LWE, N: 4, Q: 7, A: 2, B: 2})
	require.NoError(t, err)

	err = p.ValidateSecret([]int{1, 2, 3})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestValidateSecretRejectsOutOfRangeEntries(t *testing.T) {
	p, err := config.New(config.Literal{Type: config.LWE, N: 4, Q: 7, A: 2, B: 2})
	require.NoError(t, err)

	err = p.ValidateSecret([]int{1, 2, 7, 0})
	require.Error(t, err)
	require.True(t, errors.Is(err, config.ErrConfig))
}

func TestValidateSecretAcceptsWellFormedLWESecret(t *testing.T) {
	p, err := config.New(config.Literal{Type: config.LWE, N: 4, Q: 7, A: 2, B: 2})
	require.NoError(t, err)

	require.NoError(t, p.ValidateSecret([]int{0, 6, 3, 1}))
}

func TestValidateSecretAcceptsWellFormedLPNSecret(t *testing.T) {
	p, err := config.New(config.Literal{Type: config.LPN, K: 4, Tau: 0.1, A: 2, B: 2})
	require.NoError(t, err)

	require.NoError(t, p.ValidateSecret([]int{0, 1, 1, 0}))
}

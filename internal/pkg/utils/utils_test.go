package utils

import (
	"context"
	"math"
	"ot-tracking-service/internal/pkg/constvars"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAge(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Birthday Passed", func(t *testing.T) {
		assert.Equal(t, 7, CalculateAge("2018-01-20", now))
	})
	t.Run("Birthday Today", func(t *testing.T) {
		assert.Equal(t, 7, CalculateAge("2018-06-15", now))
	})
	t.Run("Birthday Upcoming", func(t *testing.T) {
		assert.Equal(t, 6, CalculateAge("2018-06-16", now))
	})
	t.Run("Invalid Or Empty", func(t *testing.T) {
		assert.Equal(t, 0, CalculateAge("", now))
		assert.Equal(t, 0, CalculateAge("15/06/2018", now))
		assert.Equal(t, 0, CalculateAge("2030-01-01", now), "future birth date should not give negative age")
	})
}

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2025, 2, 27, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(now))
}

func TestParseNumericValue(t *testing.T) {
	t.Run("Numbers And Strings", func(t *testing.T) {
		value, present, err := ParseNumericValue(4.0)
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, 4.0, value)

		value, present, err = ParseNumericValue(" 135 ")
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, 135.0, value)
	})

	t.Run("Empty Means Absent", func(t *testing.T) {
		for _, raw := range []interface{}{nil, "", "   "} {
			_, present, err := ParseNumericValue(raw)
			require.NoError(t, err)
			assert.False(t, present, "%v should be treated as absent", raw)
		}
	})

	t.Run("Non Numeric", func(t *testing.T) {
		_, _, err := ParseNumericValue("abc")
		assert.ErrorIs(t, err, ErrNotNumeric)

		_, _, err = ParseNumericValue(true)
		assert.ErrorIs(t, err, ErrNotNumeric)
	})

	t.Run("Non Finite", func(t *testing.T) {
		for _, raw := range []interface{}{"Infinity", "-Inf", "NaN", " nan ", math.Inf(1), math.NaN()} {
			value, present, err := ParseNumericValue(raw)
			assert.ErrorIs(t, err, ErrNotNumeric, "%v should not be numeric", raw)
			assert.False(t, present)
			assert.Zero(t, value)
		}
	})

	t.Run("Large Finite Is Numeric", func(t *testing.T) {
		value, present, err := ParseNumericValue("1e20")
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, 1e20, value)
	})
}

func TestParseJWT(t *testing.T) {
	secret := "test-secret"
	sign := func(claims jwt.MapClaims, key string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return token
	}

	t.Run("Valid Token", func(t *testing.T) {
		token := sign(jwt.MapClaims{"uid": "clinician-1", "exp": time.Now().Add(time.Hour).Unix()}, secret)
		uid, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "clinician-1", uid)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := sign(jwt.MapClaims{"uid": "clinician-1", "exp": time.Now().Add(-time.Hour).Unix()}, secret)
		_, err := ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token := sign(jwt.MapClaims{"uid": "clinician-1"}, "other-secret")
		_, err := ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Missing UID", func(t *testing.T) {
		token := sign(jwt.MapClaims{"sub": "clinician-1"}, secret)
		_, err := ParseJWT(token, secret)
		assert.Error(t, err)
	})
}

func TestAPIKeyHash(t *testing.T) {
	hash, err := HashAPIKey("admin-key")
	require.NoError(t, err)
	assert.True(t, CheckAPIKeyHash("admin-key", hash))
	assert.False(t, CheckAPIKeyHash("wrong-key", hash))
	assert.False(t, CheckAPIKeyHash("", hash))
	assert.False(t, CheckAPIKeyHash("admin-key", ""))
}

func TestRequestHelpers(t *testing.T) {
	requestID := GenerateRequestID()
	assert.True(t, strings.HasPrefix(requestID, constvars.REQUEST_ID_PREFIX))

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	ctx = context.WithValue(ctx, constvars.CONTEXT_UID_KEY, "clinician-1")
	assert.Equal(t, requestID, GetRequestID(ctx))
	assert.Equal(t, "clinician-1", GetUID(ctx))
	assert.Equal(t, "", GetUID(context.Background()))

	token, ok := ExtractBearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)
	_, ok = ExtractBearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = ExtractBearerToken("Bearer   ")
	assert.False(t, ok)
}

type validationProbe struct {
	Date     string   `validate:"required,date_only"`
	Type     string   `validate:"required,assessment_type"`
	Status   string   `validate:"omitempty,assessment_status"`
	Category string   `validate:"omitempty,goal_category"`
	Regions  []string `validate:"dive,body_region"`
}

func TestValidateStruct(t *testing.T) {
	valid := validationProbe{Date: "2025-01-31", Type: "pre", Status: "complete", Category: "selfCare", Regions: []string{"hip", "spine"}}
	assert.NoError(t, ValidateStruct(valid))

	invalidDate := valid
	invalidDate.Date = "2025-02-30"
	assert.Error(t, ValidateStruct(invalidDate))

	invalidType := valid
	invalidType.Type = "mid"
	assert.Error(t, ValidateStruct(invalidType))

	invalidRegion := valid
	invalidRegion.Regions = []string{"hip", "neck"}
	assert.Error(t, ValidateStruct(invalidRegion))

	invalidCategory := valid
	invalidCategory.Category = "leisure"
	assert.Error(t, ValidateStruct(invalidCategory))
}

package auth

import (
	"testing"
	"time"

	"Backend-Blueview/src/models"
	"Backend-Blueview/src/utils"
	"Backend-Blueview/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the credential check used by the login endpoint
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*models.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func TestLogin(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Login Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestSuccessfulLogin", func(t *testing.T) {
		timer := test.NewTestTimer("Successful Login")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Successful Login", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Successful Login", duration, 1*time.Millisecond)
		}()

		mockService := new(MockAuthService)
		expectedUser := &models.User{Email: "super@volts.com", Role: models.RoleAdmin}
		mockService.On("Login", "super@volts.com", "correct-horse1").Return(expectedUser, "jwt-token-123", nil)

		user, token, err := mockService.Login("super@volts.com", "correct-horse1")

		assert.NoError(t, err)
		assert.Equal(t, expectedUser, user)
		assert.Equal(t, "jwt-token-123", token)
		mockService.AssertExpectations(t)
	})

	t.Run("TestLoginInvalidCredentials", func(t *testing.T) {
		timer := test.NewTestTimer("Login Invalid Credentials")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Login Invalid Credentials", Duration: duration, Passed: true})
		}()

		mockService := new(MockAuthService)
		mockService.On("Login", "super@volts.com", "wrongpassword").Return(nil, "", assert.AnError)

		user, token, err := mockService.Login("super@volts.com", "wrongpassword")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Empty(t, token)
		mockService.AssertExpectations(t)
	})

	t.Run("TestLoginRequestValidation", func(t *testing.T) {
		timer := test.NewTestTimer("Login Request Validation")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Login Request Validation", Duration: duration, Passed: true})
		}()

		valid := models.LoginRequest{Email: "cp@volts.com", Password: "secret123"}
		assert.NoError(t, utils.ValidateStruct(&valid))

		missingEmail := models.LoginRequest{Password: "secret123"}
		assert.Error(t, utils.ValidateStruct(&missingEmail))

		badEmail := models.LoginRequest{Email: "not-an-email", Password: "secret123"}
		assert.Error(t, utils.ValidateStruct(&badEmail))

		missingPassword := models.LoginRequest{Email: "cp@volts.com"}
		assert.Error(t, utils.ValidateStruct(&missingPassword))
	})
}

func TestJWTRoundTrip(t *testing.T) {
	utils.SetJWTSecret("test-secret")

	token, err := utils.GenerateJWT("user-1", "cp@volts.com", models.RoleCP)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "cp@volts.com", claims.Email)
	assert.Equal(t, models.RoleCP, claims.Role)
}

func TestJWTRejectsTampering(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	token, err := utils.GenerateJWT("user-1", "cp@volts.com", models.RoleCP)
	assert.NoError(t, err)

	_, err = utils.ParseJWT(token + "x")
	assert.Error(t, err)

	utils.SetJWTSecret("different-secret")
	_, err = utils.ParseJWT(token)
	assert.Error(t, err)

	utils.SetJWTSecret("test-secret")
}

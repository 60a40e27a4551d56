package http

// Client-facing messages carried in the response envelope.
const (
	MsgLoginSuccessful    = "Login Successful"
	MsgOTPRequired        = "OTP verification required"
	MsgOTPVerified        = "OTP verified successfully"
	MsgOTPResent          = "OTP resent successfully"
	MsgLogoutSuccessful   = "Logout successful"
	MsgTokenRefreshed     = "Token refreshed successfully"
	MsgResetRequested     = "If the email exists, a reset link has been sent"
	MsgPasswordUpdated    = "Password updated successfully"
	MsgTwoFactorUpdated   = "Two-factor preference updated successfully"
	MsgUserCreated        = "User created successfully"
	MsgUserUpdated        = "User updated successfully"
	MsgUserRoleUpdated    = "User role updated successfully"
	MsgUserRetrieved      = "User retrieved successfully"
	MsgUsersListRetrieved = "Users list retrieved successfully"
	MsgUserActivated      = "User activated successfully"
	MsgUserSuspended      = "User suspended successfully"

	MsgBadRequest          = "Bad request"
	MsgValidationError     = "Validation error"
	MsgUnauthorized        = "Unauthorized access"
	MsgInvalidCredentials  = "Invalid username or password"
	MsgInvalidToken        = "Invalid or expired token"
	MsgTokenAlreadyInvalid = "Token is already invalid"
	MsgInvalidOTP          = "Invalid OTP"
	MsgExpiredOTP          = "OTP has expired"
	MsgTwoFactorNotEnabled = "Two-factor authentication is not enabled"
	MsgNotFound            = "Resource not found"
	MsgUserExists          = "A user with that username or email already exists"
	MsgPermissionDenied    = "You do not have permission to perform this action."
	MsgInternalError       = "Internal server error"
)

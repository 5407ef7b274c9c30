package handler

// Response messages. Authentication failures are deliberately generic.
const (
	msgInternalServer     = "Internal server error..."
	msgBodyMissing        = "Request body is missing..."
	msgInvalidLogin       = "Invalid email or password..."
	msgUnableToLogin      = "Unable to login at the moment..."
	msgLoginSuccess       = "Login successful!"
	msgLookupFailed       = "Error in sending request..."
	msgUserNotExist       = "User does not exist..."
	msgVerifyFailed       = "Error in password verification..."
	msgInvalidPassword    = "Invalid password..."
	msgHashFailed         = "Failed to hash password..."
	msgUpdatePwdFailed    = "Failed to update password..."
	msgPasswordUpdated    = "Password updated successfully!"
	msgInsertFailed       = "Failed to insert record...."
	msgFetchFailed        = "Failed to get records..."
	msgFetchRecordsFailed = "Error fetching records..."
	msgNotFound           = "Record not found..."
	msgUpdateFailed       = "Failed to update record..."
	msgDeleteFailed       = "Failed to delete record..."
	msgUserUpdated        = "User updated successfully!"
	msgUserDeleted        = "User deleted successfully!"
	msgEmailTaken         = "Email address already registered..."
	msgRequestUpdated     = "Request updated successfully!"
	msgRequestDeleted     = "Request deleted successfully!"
	msgSelfRequest        = "Cannot send a request to yourself..."
	msgUnknownParticipant = "Sender or receiver does not exist..."
	msgDuplicateRequest   = "Request already exists..."
)

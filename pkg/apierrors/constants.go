package apierrors

const (
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgInvalidUserPayload   = "invalidUserPayload"
	MsgInvalidImportPayload = "invalidImportPayload"
	MsgInvalidDays          = "invalidDays"
	MsgValidationFailed     = "validationFailed"
	MsgTaskNotFound         = "taskNotFound"
	MsgUserNotFound         = "userNotFound"
	MsgUsernameTaken        = "usernameTaken"
	MsgIncompatibleBackup   = "incompatibleBackup"
	MsgMissingSession       = "missingSession"
	MsgInvalidSession       = "invalidSession"
	MsgFailListTask         = "errorListTask"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailLoadStats        = "failLoadStats"
	MsgFailRegister         = "failRegister"
	MsgFailLogin            = "failLogin"
	MsgFailListUsers        = "failListUsers"
	MsgFailExport           = "failExport"
	MsgFailImport           = "failImport"
)

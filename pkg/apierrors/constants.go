package apierrors

const (
	MsgInvalidProjectID      = "invalidProjectID"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgInvalidProjectField   = "invalidProjectField"
	MsgProjectNotFound       = "projectNotFound"
	MsgFailListProjects      = "failListProjects"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgFailProjectStats      = "failProjectStats"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskField   = "invalidTaskField"
	MsgInvalidTaskFilter  = "invalidTaskFilter"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
)

package tasks

// DefineTasks registers all available tasks
func DefineTasks() {
	// Register general tasks
	RegisterHandler(LogInfoTask.TaskID(), LogInfoTask.HandleExecution)

	// Register approval tasks
	RegisterHandler(ReconcileApprovalsTask.TaskID(), ReconcileApprovalsTask.HandleExecution)

	// Register subscription tasks
	RegisterHandler(ExpireSubscriptionsTask.TaskID(), ExpireSubscriptionsTask.HandleExecution)
}

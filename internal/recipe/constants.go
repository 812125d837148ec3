package recipe

// Operation labels recorded on the recipe operations metric
const (
	OperationSave   = "save"
	OperationRemove = "remove"
	OperationToggle = "toggle"
)

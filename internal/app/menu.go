package app

// Choice is a menu entry number.
type Choice int

// Menu choices.
const (
	ChoiceInsertEnd    Choice = 1
	ChoiceInsertAfter  Choice = 2
	ChoiceInsertBefore Choice = 3
	ChoiceInsertBegin  Choice = 4
	ChoiceEdit         Choice = 5
	ChoicePrint        Choice = 6
	ChoiceUndo         Choice = 7
	ChoiceExit         Choice = 8
	ChoiceHistory      Choice = 9
)

const menuText = `
--- MENU ---
1. Insert at end
2. Insert after position
3. Insert before position
4. Insert at beginning
5. Edit node
6. Print list
7. Undo last operation
8. Exit
9. Show undo history
`

// Prompts.
const (
	promptChoice         = "Enter choice: "
	promptInsertEnd      = "Enter value to insert at end: "
	promptPositionAfter  = "Enter position to insert after (0-based): "
	promptPositionBefore = "Enter position to insert before (0-based): "
	promptValue          = "Enter value to insert: "
	promptInsertBegin    = "Enter value to insert at beginning: "
	promptEditOld        = "Enter value to edit: "
	promptEditNew        = "Enter new value: "
)

// String returns the operation name used in logs.
func (c Choice) String() string {
	switch c {
	case ChoiceInsertEnd:
		return "insert end"
	case ChoiceInsertAfter:
		return "insert after"
	case ChoiceInsertBefore:
		return "insert before"
	case ChoiceInsertBegin:
		return "insert begin"
	case ChoiceEdit:
		return "edit"
	case ChoicePrint:
		return "print"
	case ChoiceUndo:
		return "undo"
	case ChoiceExit:
		return "exit"
	case ChoiceHistory:
		return "history"
	default:
		return "unknown"
	}
}

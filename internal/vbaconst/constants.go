package vbaconst

import "github.com/vk/vbaemu/internal/value"

// Entry is a single predefined constant.
type Entry struct {
	Name  string
	Value value.Value
}

// Predefined lists the language's built-in constants in declaration order.
var Predefined = []Entry{
	// VbMsgBoxStyle
	{"vbAbortRetryIgnore", value.Int(2)},
	{"vbApplicationModal", value.Int(0)},
	{"vbCritical", value.Int(16)},
	{"vbDefaultButton1", value.Int(0)},
	{"vbDefaultButton2", value.Int(256)},
	{"vbDefaultButton3", value.Int(512)},
	{"vbDefaultButton4", value.Int(768)},
	{"vbExclamation", value.Int(48)},
	{"vbInformation", value.Int(64)},
	{"vbMsgBoxHelpButton", value.Int(16384)},
	{"vbMsgBoxRight", value.Int(524288)},
	{"vbMsgBoxRtlReading", value.Int(1048576)},
	{"vbMsgBoxSetForeground", value.Int(65536)},
	{"vbOKCancel", value.Int(1)},
	{"vbOKOnly", value.Int(0)},
	{"vbQuestion", value.Int(32)},
	{"vbRetryCancel", value.Int(5)},
	{"vbSystemModal", value.Int(4096)},
	{"vbYesNo", value.Int(4)},
	{"vbYesNoCancel", value.Int(3)},

	// VbMsgBoxResult
	{"vbOK", value.Int(1)},
	{"vbCancel", value.Int(2)},
	{"vbAbort", value.Int(3)},
	{"vbRetry", value.Int(4)},
	{"vbIgnore", value.Int(5)},
	{"vbYes", value.Int(6)},
	{"vbNo", value.Int(7)},

	// VbAppWinStyle
	{"vbHide", value.Int(0)},
	{"vbNormalFocus", value.Int(1)},
	{"vbMinimizedFocus", value.Int(2)},
	{"vbMaximizedFocus", value.Int(3)},
	{"vbNormalNoFocus", value.Int(4)},
	{"vbMinimizedNoFocus", value.Int(6)},

	// Constants module
	{"vbBack", value.Text("\b")},
	{"vbCr", value.Text("\r")},
	{"vbCrLf", value.Text("\r\n")},
	{"vbFormFeed", value.Text("\f")},
	{"vbLf", value.Text("\n")},
	{"vbNewLine", value.Text("\r\n")},
	{"vbNullChar", value.Text("\x00")},
	{"vbTab", value.Text("\t")},
	{"vbVerticalTab", value.Text("\v")},
	{"vbNullString", value.Null},
	{"vbObjectError", value.Int(-2147221504)},
}

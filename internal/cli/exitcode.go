package cli

import "github.com/akita-international-university/ir-color-guide/internal/domain"

const (
	exitGeneric      = 1
	exitInput        = 2
	exitTool         = 3
	exitPrecondition = 4
)

func exitCode(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindParse, domain.KindSchema,
		domain.KindInvalidConfig, domain.KindBadArgument:
		return exitInput
	case domain.KindFormatterFailed, domain.KindExecution:
		return exitTool
	case domain.KindPrecondition:
		return exitPrecondition
	default:
		return exitGeneric
	}
}

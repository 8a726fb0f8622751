package differ

import (
	"strings"

	"github.com/wI2L/jsondiff"
)

// Translate patches to english
func Translate(patches jsondiff.Patch) []string {
	if len(patches) == 0 {
		return nil
	}

	var translations []string
	seen := make(map[string]bool)

	for _, op := range patches {
		translation := translateOperation(op)
		if translation != "" && !seen[translation] {
			seen[translation] = true
			translations = append(translations, translation)
		}
	}

	return translations
}

func translateOperation(op jsondiff.Operation) string {
	switch op.Type {
	case jsondiff.OperationAdd:
		return translateAdd(op.Path)
	case jsondiff.OperationRemove:
		return translateRemove(op.Path)
	case jsondiff.OperationReplace:
		return translateReplace(op.Path)
	default:
		return ""
	}
}

func translateAdd(path string) string {
	if strings.HasPrefix(path, "/game") {
		return "New game argument token added."
	}
	if path == "/legacy" {
		return "Legacy argument template introduced."
	}
	return "Argument source added."
}

func translateRemove(path string) string {
	if strings.HasPrefix(path, "/game") {
		return "Game argument token removed."
	}
	if path == "/legacy" {
		return "Legacy argument template dropped."
	}
	return "Argument source removed."
}

func translateReplace(path string) string {
	if path == "/legacy" {
		return "Legacy argument template changed."
	}
	if strings.HasPrefix(path, "/game") {
		return "Game argument token changed."
	}
	return "Argument source changed."
}

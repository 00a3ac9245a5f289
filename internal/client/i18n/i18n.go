// Package i18n translates user-facing message keys. The catalog covers the
// error categories the view model reports; unknown keys fall back to the
// key itself so a missing translation is visible instead of silent.
package i18n

import "github.com/sam-ezra/todo/internal/client/models"

// Message keys reported by the view model.
const (
	KeyLoadFailed      = "app.loadFailed"
	KeyCreateFailed    = "app.createFailed"
	KeyUpdateFailed    = "app.updateFailed"
	KeyToggleFailed    = "app.toggleFailed"
	KeyDeleteFailed    = "app.deleteFailed"
	KeyReorderFailed   = "app.reorderFailed"
	KeyConnectionError = "app.connectionError"
)

var english = map[string]string{
	KeyLoadFailed:      "Failed to load lists",
	KeyCreateFailed:    "Failed to create",
	KeyUpdateFailed:    "Failed to update",
	KeyToggleFailed:    "Failed to toggle todo",
	KeyDeleteFailed:    "Failed to delete",
	KeyReorderFailed:   "Failed to reorder",
	KeyConnectionError: "Cannot reach the server",
}

var spanish = map[string]string{
	KeyLoadFailed:      "No se pudieron cargar las listas",
	KeyCreateFailed:    "No se pudo crear",
	KeyUpdateFailed:    "No se pudo actualizar",
	KeyToggleFailed:    "No se pudo cambiar la tarea",
	KeyDeleteFailed:    "No se pudo eliminar",
	KeyReorderFailed:   "No se pudo reordenar",
	KeyConnectionError: "No se puede conectar con el servidor",
}

// T returns the message for key in the given language. English is the
// fallback language, the key itself the fallback message.
func T(lang models.Language, key string) string {
	if lang == models.LanguageSpanish {
		if msg, ok := spanish[key]; ok {
			return msg
		}
	}
	if msg, ok := english[key]; ok {
		return msg
	}
	return key
}

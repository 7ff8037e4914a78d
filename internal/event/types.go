// internal/event/types.go
package event

const (
	ChoiceSelected EventType = "ChoiceSelected" // Выбор изменился, Data — ui.Choice
	SnapshotSaved  EventType = "SnapshotSaved"  // Кадр сохранён в PNG, Data — путь
)

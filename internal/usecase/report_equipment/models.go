package report_equipment

// Request модель запроса на смену состояния оборудования
type Request struct {
	EquipmentID int64
	Broken      bool
}

// RelocationOutcome результат попытки перемещения одной затронутой брони
type RelocationOutcome struct {
	BookingID int64
	Relocated bool
	ToRoom    string // Пусто, если перемещение не удалось
	Message   string
}

// Response модель ответа с результатами каскада
type Response struct {
	EquipmentID   int64
	EquipmentName string
	RoomID        int64
	RoomName      string
	Broken        bool

	// Relocations результаты перемещения затронутых броней (только при поломке)
	Relocations []RelocationOutcome

	// CancelledMaintenance число снятых броней обслуживания (только при ремонте)
	CancelledMaintenance int64
}

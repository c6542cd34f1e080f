package models

// Display mappings shared with the frontend. The label and color tables
// are part of the external contract: client and server must agree on the
// stored enumeration strings. Unknown values fall through to a neutral
// gray with the raw value as label.

var statusLabels = map[Status]string{
	StatusPending:    "In behandeling",
	StatusInProgress: "In uitvoering",
	StatusCompleted:  "Afgerond",
	StatusCancelled:  "Geannuleerd",
}

var statusColors = map[Status]string{
	StatusPending:    "bg-yellow-100 text-yellow-800",
	StatusInProgress: "bg-blue-100 text-blue-800",
	StatusCompleted:  "bg-green-100 text-green-800",
	StatusCancelled:  "bg-red-100 text-red-800",
}

var actionTypeLabels = map[ActionType]string{
	ActionPlace:    "Plaatsen",
	ActionRemove:   "Verwijderen",
	ActionRelocate: "Verplaatsen",
	ActionRaise:    "Ophogen",
}

var furnitureTypeLabels = map[FurnitureType]string{
	FurnitureAbri:          "Abri",
	FurnitureMupi:          "Mupi",
	FurnitureDriehoeksbord: "Driehoeksbord",
	FurnitureReclamezuil:   "Reclamezuil",
}

// StatusLabel returns the human label for a status.
func StatusLabel(s Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StatusColor returns the CSS color class for a status badge.
func StatusColor(s Status) string {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return "bg-gray-100 text-gray-800"
}

// ActionTypeLabel returns the human label for an action type.
func ActionTypeLabel(a ActionType) string {
	if label, ok := actionTypeLabels[a]; ok {
		return label
	}
	return string(a)
}

// FurnitureTypeLabel returns the human label for a furniture type.
func FurnitureTypeLabel(f FurnitureType) string {
	if label, ok := furnitureTypeLabels[f]; ok {
		return label
	}
	return string(f)
}

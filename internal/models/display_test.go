package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In behandeling", StatusLabel(StatusPending))
	assert.Equal(t, "Afgerond", StatusLabel(StatusCompleted))
	assert.Equal(t, "LEGACY", StatusLabel(Status("LEGACY")))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "bg-yellow-100 text-yellow-800", StatusColor(StatusPending))
	assert.Equal(t, "bg-red-100 text-red-800", StatusColor(StatusCancelled))
	assert.Equal(t, "bg-gray-100 text-gray-800", StatusColor(Status("LEGACY")))
}

func TestActionTypeLabel(t *testing.T) {
	assert.Equal(t, "Plaatsen", ActionTypeLabel(ActionPlace))
	assert.Equal(t, "Ophogen", ActionTypeLabel(ActionRaise))
	assert.Equal(t, "slopen", ActionTypeLabel(ActionType("slopen")))
}

func TestFurnitureTypeLabel(t *testing.T) {
	assert.Equal(t, "Abri", FurnitureTypeLabel(FurnitureAbri))
	assert.Equal(t, "Driehoeksbord", FurnitureTypeLabel(FurnitureDriehoeksbord))
	assert.Equal(t, "billboard", FurnitureTypeLabel(FurnitureType("billboard")))
}

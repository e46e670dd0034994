package domain

import "time"

type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

// ChangeEvent announces a mutation of a catalog entity.
type ChangeEvent struct {
	Entity     string       `json:"entity"`
	Action     ChangeAction `json:"action"`
	EntityID   ID           `json:"entity_id"`
	Name       string       `json:"name"`
	OccurredAt time.Time    `json:"occurred_at"`
}

func (e *ChangeEvent) GetName() string {
	return e.Entity + "." + string(e.Action)
}

func (e *ChangeEvent) GetEntityName() string {
	return e.Entity
}

func NewProductEvent(action ChangeAction, product *Product) *ChangeEvent {
	return &ChangeEvent{
		Entity:     "product",
		Action:     action,
		EntityID:   product.ID,
		Name:       product.Name,
		OccurredAt: time.Now(),
	}
}

func NewProviderEvent(action ChangeAction, provider *Provider) *ChangeEvent {
	return &ChangeEvent{
		Entity:     "provider",
		Action:     action,
		EntityID:   provider.ID,
		Name:       provider.Name,
		OccurredAt: time.Now(),
	}
}

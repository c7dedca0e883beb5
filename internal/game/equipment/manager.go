// Package equipment owns the wielded-item map of one agent together with the
// aggregates derived from it. TryEquip and TryDequip are the only mutators.
package equipment

import (
	"log/slog"
	"sync"

	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/model"
)

type entry struct {
	item        *model.Item
	slot        model.SlotKind
	encumbrance int32
	value       int32
}

// Manager — карта надетых предметов агента.
// Aggregates are updated with the contribution recorded at equip time, so a
// later stack change on a worn item cannot make them drift.
type Manager struct {
	ownerID uint32
	sink    event.Sink
	policy  Policy

	mu          sync.RWMutex
	entries     []entry
	index       map[uint32]int
	children    []Child
	encumbrance int32
	value       int32
}

// Option configures a Manager.
type Option func(*Manager)

// WithPolicy replaces the default permissive slot policy.
func WithPolicy(p Policy) Option {
	return func(m *Manager) { m.policy = p }
}

// WithSink sets the event sink. Defaults to event.Discard.
func WithSink(s event.Sink) Option {
	return func(m *Manager) { m.sink = s }
}

// NewManager creates an empty equipment map for ownerID.
func NewManager(ownerID uint32, opts ...Option) *Manager {
	m := &Manager{
		ownerID: ownerID,
		sink:    event.Discard,
		policy:  PermissivePolicy{},
		index:   make(map[uint32]int),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// OwnerID returns the agent the map belongs to.
func (m *Manager) OwnerID() uint32 {
	return m.ownerID
}

// TryEquip wields item in slot. Returns false, with no state change, when the
// slot policy refuses, the slot is SlotNone, or the item is already worn here.
func (m *Manager) TryEquip(item *model.Item, slot model.SlotKind) bool {
	if item == nil || slot == model.SlotNone {
		return false
	}

	m.mu.Lock()
	if _, ok := m.index[item.ObjectID()]; ok {
		m.mu.Unlock()
		return false
	}
	if !m.policy.CanEquip(lockedView{m}, item, slot) {
		m.mu.Unlock()
		slog.Debug("slot not available", "owner", m.ownerID, "item", item.ObjectID(), "slot", slot.String())
		return false
	}
	child, attached := m.addLocked(item, slot)
	m.mu.Unlock()

	visible := IsInChildLocation(slot)
	m.sink.Send(event.EquipVisualChanged{AgentID: m.ownerID, ItemID: item.ObjectID(), Visible: visible, Equipped: true})
	if visible {
		m.sink.Send(event.Sound{ObjectID: m.ownerID, Sound: event.SoundWieldObject, Volume: 1})
	}
	if attached && !slot.IsMissileAmmo() {
		m.sink.Send(event.OwnerPositionSync{
			AgentID:   m.ownerID,
			ItemID:    item.ObjectID(),
			Parent:    child.Parent,
			Placement: child.Placement,
			Tracked:   true,
		})
	}
	m.sink.Send(event.DescriptionChanged{AgentID: m.ownerID})
	return true
}

// TryDequip unwields the item. droppingToLandscape suppresses the owner
// position desync because the item is about to appear in the world.
func (m *Manager) TryDequip(itemID uint32, droppingToLandscape bool) (*model.Item, model.SlotKind, bool) {
	m.mu.Lock()
	i, ok := m.index[itemID]
	if !ok {
		m.mu.Unlock()
		return nil, model.SlotNone, false
	}
	e := m.entries[i]
	m.removeLocked(i)
	m.mu.Unlock()

	if e.slot.Selectable() {
		m.sink.Send(event.Sound{ObjectID: m.ownerID, Sound: event.SoundUnwieldObject, Volume: 1})
	}
	m.sink.Send(event.EquipVisualChanged{AgentID: m.ownerID, ItemID: itemID, Visible: e.slot.Selectable(), Equipped: false})
	m.sink.Send(event.DescriptionChanged{AgentID: m.ownerID})
	if !droppingToLandscape {
		m.sink.Send(event.OwnerPositionSync{AgentID: m.ownerID, ItemID: itemID, Tracked: false})
	}
	return e.item, e.slot, true
}

// Load populates the map from items already carrying a wielded slot, as read
// from persistence. No events are emitted. Items without a slot or already
// present are skipped. Returns the number of items added.
func (m *Manager) Load(items []*model.Item) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, item := range items {
		if item == nil {
			continue
		}
		slot := item.Slot()
		if slot == model.SlotNone {
			continue
		}
		if _, ok := m.index[item.ObjectID()]; ok {
			continue
		}
		m.addLocked(item, slot)
		n++
	}
	m.setChildrenLocked()
	return n
}

// SetChildren rebuilds the child list from the equip map.
func (m *Manager) SetChildren() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setChildrenLocked()
}

func (m *Manager) addLocked(item *model.Item, slot model.SlotKind) (Child, bool) {
	item.SetWielded(m.ownerID, slot)
	e := entry{
		item:        item,
		slot:        slot,
		encumbrance: item.Encumbrance(),
		value:       item.Value(),
	}
	m.index[item.ObjectID()] = len(m.entries)
	m.entries = append(m.entries, e)
	m.encumbrance += e.encumbrance
	m.value += e.value
	return m.trySetChildLocked(item, slot)
}

func (m *Manager) removeLocked(i int) {
	e := m.entries[i]
	id := e.item.ObjectID()

	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, id)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].item.ObjectID()] = j
	}

	m.encumbrance -= e.encumbrance
	m.value -= e.value

	e.item.ClearWielded()
	e.item.ClearChild()
	for j, c := range m.children {
		if c.ItemID == id {
			m.children = append(m.children[:j], m.children[j+1:]...)
			break
		}
	}
}

func (m *Manager) trySetChildLocked(item *model.Item, slot model.SlotKind) (Child, bool) {
	if !IsInChildLocation(slot) {
		item.ClearChild()
		return Child{}, false
	}
	placement, parent := SlotVisual(item, slot)
	item.SetChild(placement, parent)
	c := Child{ItemID: item.ObjectID(), Slot: slot, Placement: placement, Parent: parent}
	m.children = append(m.children, c)
	return c, true
}

func (m *Manager) setChildrenLocked() {
	m.children = m.children[:0]
	for _, e := range m.entries {
		m.trySetChildLocked(e.item, e.slot)
	}
}

type lockedView struct{ m *Manager }

func (v lockedView) ItemInSlot(slot model.SlotKind) *model.Item {
	return v.m.firstLocked(func(e entry) bool { return e.slot == slot })
}

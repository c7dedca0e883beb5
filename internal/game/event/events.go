// Package event defines the outbound notifications produced by the equipment
// and combat subsystems. Events are plain values; delivery is fire-and-forget
// through a Sink.
package event

import "github.com/udisondev/acego/internal/model"

// Kind identifies an event type.
type Kind int32

const (
	KindEquipVisualChanged Kind = iota + 1
	KindDescriptionChanged
	KindOwnerPositionSync
	KindAttackerNotification
	KindDefenderNotification
	KindVitalChanged
	KindEvadeNotification
	KindAttackEvaded
	KindLifestoneProtected
	KindNotPlayerKiller
	KindSound
	KindScript
	KindDied
	KindPeriodicDamage
)

var kindNames = map[Kind]string{
	KindEquipVisualChanged:   "EquipVisualChanged",
	KindDescriptionChanged:   "DescriptionChanged",
	KindOwnerPositionSync:    "OwnerPositionSync",
	KindAttackerNotification: "AttackerNotification",
	KindDefenderNotification: "DefenderNotification",
	KindVitalChanged:         "VitalChanged",
	KindEvadeNotification:    "EvadeNotification",
	KindAttackEvaded:         "AttackEvaded",
	KindLifestoneProtected:   "LifestoneProtected",
	KindNotPlayerKiller:      "NotPlayerKiller",
	KindSound:                "Sound",
	KindScript:               "Script",
	KindDied:                 "Died",
	KindPeriodicDamage:       "PeriodicDamage",
}

// String returns the event kind name.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// Event is implemented by every notification.
type Event interface {
	Kind() Kind
}

// EquipVisualChanged fires when an item is wielded or unwielded. Visible
// tells viewers whether to play the wield/unwield sound.
type EquipVisualChanged struct {
	AgentID  uint32
	ItemID   uint32
	Visible  bool
	Equipped bool
}

// DescriptionChanged asks viewers to refresh the agent's appearance.
type DescriptionChanged struct {
	AgentID uint32
}

// OwnerPositionSync attaches (Tracked) or detaches a held item on viewers.
type OwnerPositionSync struct {
	AgentID   uint32
	ItemID    uint32
	Parent    model.ParentLocation
	Placement model.Placement
	Tracked   bool
}

// AttackerNotification is sent to the attacker after a landed hit.
type AttackerNotification struct {
	AttackerID     uint32
	TargetName     string
	DamageType     model.DamageType
	DamageFraction float64
	DamageAmount   uint32
	Critical       bool
	Conditions     model.AttackConditions
}

// DefenderNotification is sent to the defender after a landed hit.
type DefenderNotification struct {
	DefenderID     uint32
	AttackerName   string
	DamageType     model.DamageType
	DamageFraction float64
	DamageAmount   uint32
	BodyPart       model.BodyPart
	Critical       bool
	Conditions     model.AttackConditions
}

// VitalChanged reports the target health fraction to the attacker.
type VitalChanged struct {
	ViewerID uint32
	AgentID  uint32
	Fraction float64
}

// EvadeNotification tells the defender that it evaded AttackerName.
type EvadeNotification struct {
	DefenderID   uint32
	AttackerName string
}

// AttackEvaded tells the attacker that TargetName evaded.
type AttackEvaded struct {
	AttackerID uint32
	TargetName string
}

// LifestoneProtected tells the attacker the target is protected.
type LifestoneProtected struct {
	AttackerID uint32
	TargetID   uint32
	TargetName string
}

// NotPlayerKiller tells the attacker that a player-killer check failed.
type NotPlayerKiller struct {
	AttackerID uint32
	TargetName string
}

// Sound plays a sound on an object.
type Sound struct {
	ObjectID uint32
	Sound    SoundID
	Volume   float64
}

// Script plays a visual script on an object.
type Script struct {
	ObjectID uint32
	Script   PlayScript
}

// Died is broadcast once when an agent dies.
type Died struct {
	AgentID    uint32
	KillerID   uint32 // 0 for damage over time
	DamageType model.DamageType
	Critical   bool
}

// PeriodicDamage is sent to an agent receiving damage over time.
type PeriodicDamage struct {
	AgentID uint32
	Amount  uint32
	Nether  bool
}

func (EquipVisualChanged) Kind() Kind   { return KindEquipVisualChanged }
func (DescriptionChanged) Kind() Kind   { return KindDescriptionChanged }
func (OwnerPositionSync) Kind() Kind    { return KindOwnerPositionSync }
func (AttackerNotification) Kind() Kind { return KindAttackerNotification }
func (DefenderNotification) Kind() Kind { return KindDefenderNotification }
func (VitalChanged) Kind() Kind         { return KindVitalChanged }
func (EvadeNotification) Kind() Kind    { return KindEvadeNotification }
func (AttackEvaded) Kind() Kind         { return KindAttackEvaded }
func (LifestoneProtected) Kind() Kind   { return KindLifestoneProtected }
func (NotPlayerKiller) Kind() Kind      { return KindNotPlayerKiller }
func (Sound) Kind() Kind                { return KindSound }
func (Script) Kind() Kind               { return KindScript }
func (Died) Kind() Kind                 { return KindDied }
func (PeriodicDamage) Kind() Kind       { return KindPeriodicDamage }

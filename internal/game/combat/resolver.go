// Package combat resolves one attack between two agents: evasion, damage,
// critical hits, body part selection and the resulting vital changes.
package combat

import (
	"context"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/udisondev/acego/internal/config"
	"github.com/udisondev/acego/internal/game/creature"
	"github.com/udisondev/acego/internal/game/event"
	"github.com/udisondev/acego/internal/model"
	"github.com/udisondev/acego/internal/rnd"
)

const tracerName = "github.com/udisondev/acego/internal/game/combat"

type noProficiency struct{}

func (noProficiency) OnSuccessUse(creature.Combatant, model.CreatureSkill, uint32) {}

// Resolver — конвейер разрешения атаки.
// Resolver is stateless between calls; all randomness comes from rng and all
// outward effects go to sink. Attack must run on the target's owning actor.
type Resolver struct {
	rng         rnd.Source
	sink        event.Sink
	tuning      config.Combat
	skillChance func(skill, difficulty uint32) float64
	proficiency Proficiency
	weapons     WeaponModifiers
	sneak       SneakAttackEvaluator
	lifestone   *LifestoneTracker
	tracer      trace.Tracer

	// observer — callback для наблюдения за результатами атак (nil в production).
	observer func(Outcome)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSkillChance replaces the skill check function.
func WithSkillChance(fn func(skill, difficulty uint32) float64) Option {
	return func(r *Resolver) { r.skillChance = fn }
}

// WithProficiency sets the skill advancement hook.
func WithProficiency(p Proficiency) Option {
	return func(r *Resolver) { r.proficiency = p }
}

// WithWeaponModifiers replaces the weapon modifier provider.
func WithWeaponModifiers(w WeaponModifiers) Option {
	return func(r *Resolver) { r.weapons = w }
}

// WithSneakAttack sets the sneak attack evaluator.
func WithSneakAttack(s SneakAttackEvaluator) Option {
	return func(r *Resolver) { r.sneak = s }
}

// WithLifestoneTracker lets attacks end the attacker's lifestone protection.
func WithLifestoneTracker(t *LifestoneTracker) Option {
	return func(r *Resolver) { r.lifestone = t }
}

// WithTracer sets the tracer used for attack spans.
func WithTracer(t trace.Tracer) Option {
	return func(r *Resolver) { r.tracer = t }
}

// WithObserver sets a callback invoked with every outcome.
func WithObserver(fn func(Outcome)) Option {
	return func(r *Resolver) { r.observer = fn }
}

// NewResolver creates a resolver.
func NewResolver(rng rnd.Source, sink event.Sink, tuning config.Combat, opts ...Option) *Resolver {
	r := &Resolver{
		rng:         rng,
		sink:        sink,
		tuning:      tuning,
		skillChance: SkillChance,
		proficiency: noProficiency{},
		weapons:     TemplateWeaponModifiers{Tuning: tuning},
		tracer:      otel.Tracer(tracerName),
	}
	for _, o := range opts {
		o(r)
	}
	if r.sink == nil {
		r.sink = event.Discard
	}
	return r
}

// Attack resolves one melee or missile attack of attacker against target and
// applies the result.
func (r *Resolver) Attack(ctx context.Context, attacker, target creature.Combatant) Outcome {
	_, span := r.tracer.Start(ctx, "combat.Attack")
	defer span.End()

	var out Outcome
	if attacker == nil || target == nil {
		slog.Warn("attack with missing combatant", "attacker", attacker != nil, "target", target != nil)
		out.Result = ResultInvalidTarget
	} else {
		span.SetAttributes(
			attribute.Int64("attacker.id", int64(attacker.ObjectID())),
			attribute.Int64("target.id", int64(target.ObjectID())),
		)
		out = r.attack(attacker, target)
	}

	span.SetAttributes(
		attribute.String("result", out.Result.String()),
		attribute.Int64("amount", int64(out.Amount)),
		attribute.Bool("killed", out.Killed),
	)
	if r.observer != nil {
		r.observer(out)
	}
	return out
}

func (r *Resolver) attack(attacker, target creature.Combatant) Outcome {
	out := Outcome{AttackerID: attacker.ObjectID(), TargetID: target.ObjectID()}

	if target.IsDead() || target.Vital(model.VitalHealth).Current == 0 {
		out.Result = ResultTargetDead
		return out
	}

	if r.lifestone != nil {
		r.lifestone.Remove(attacker.ObjectID())
	}

	if attacker.IsPlayer() && target.IsPlayer() && (!attacker.PlayerKiller() || !target.PlayerKiller()) {
		r.sink.Send(event.NotPlayerKiller{AttackerID: attacker.ObjectID(), TargetName: target.Name()})
		out.Result = ResultRefused
		return out
	}

	if attacker.IsPlayer() {
		attacker.UpdateVitalDelta(model.VitalStamina, -AttackStamina(attacker))
	}

	dmg, res := r.CalculateDamage(attacker, target)
	out.Result = res
	if dmg == nil {
		switch res {
		case ResultProtected:
			r.sink.Send(event.LifestoneProtected{AttackerID: attacker.ObjectID(), TargetID: target.ObjectID(), TargetName: target.Name()})
		case ResultEvaded:
			r.sink.Send(event.AttackEvaded{AttackerID: attacker.ObjectID(), TargetName: target.Name()})
			r.onEvade(attacker, target)
		}
		return out
	}

	if target.Invincible() {
		dmg.Amount = 0
	}
	out.Damage = dmg

	r.proficiency.OnSuccessUse(attacker, attacker.Skill(attacker.WeaponSkill()), r.EffectiveDefenseSkill(attacker, target))
	out.Amount, out.Taken, out.Killed = r.applyDamage(attacker, target, dmg)

	slog.Debug("attack resolved",
		"attacker", attacker.Name(),
		"target", target.Name(),
		"amount", out.Amount,
		"critical", dmg.Critical,
		"killed", out.Killed)
	return out
}

// EffectiveAttackSkill returns the attack skill used for the evade roll.
func (r *Resolver) EffectiveAttackSkill(attacker creature.Combatant) uint32 {
	t := attacker.AttackType()
	base := float64(attacker.Skill(attacker.AttackSkill()).Current)
	return uint32(math.Round(base * EvadeAccuracyMod(attacker.Attack(), t) * r.weapons.Offense(attacker)))
}

// EffectiveDefenseSkill returns the target's defense against the attacker's
// current attack type. Exhausted targets have no defense.
func (r *Resolver) EffectiveDefenseSkill(attacker, target creature.Combatant) uint32 {
	skill := defenseSkillFor(attacker.AttackType())
	mod := 1.0
	if skill == model.SkillMeleeDefense {
		mod = r.weapons.MeleeDefense(target)
	}
	if target.IsExhausted() {
		return 0
	}
	return uint32(math.Round(float64(target.Skill(skill).Current) * mod))
}

// EvadeChance returns the probability that target evades attacker.
func (r *Resolver) EvadeChance(attacker, target creature.Combatant) float64 {
	return 1.0 - r.skillChance(r.EffectiveAttackSkill(attacker), r.EffectiveDefenseSkill(attacker, target))
}

func defenseSkillFor(t model.CombatType) model.Skill {
	switch t {
	case model.CombatTypeMissile:
		return model.SkillMissileDefense
	case model.CombatTypeMagic:
		return model.SkillMagicDefense
	default:
		return model.SkillMeleeDefense
	}
}

// CalculateDamage runs the damage pipeline without applying it. A nil
// result means the attack was nullified, with the reason in Result.
func (r *Resolver) CalculateDamage(attacker, target creature.Combatant) (*Damage, Result) {
	if target.UnderLifestoneProtection() {
		return nil, ResultProtected
	}

	if r.rng.Float64() < r.EvadeChance(attacker, target) {
		return nil, ResultEvaded
	}

	t := attacker.AttackType()
	a := attacker.Attack()
	source := DamageSource(attacker, t)
	lo, hi := r.BaseDamageRange(source)
	base := r.rng.Range(lo, hi)

	attributeMod := AttackAttributeMod(attacker, t, r.tuning)
	powerAccuracyMod := PowerAccuracyMod(a, t)
	recklessnessMod := RecklessnessMod(attacker)
	sneakAttackMod := 1.0
	if r.sneak != nil {
		sneakAttackMod = r.sneak.SneakAttackMod(attacker, target)
	}
	damageRatingMod := AdditiveCombine(recklessnessMod, sneakAttackMod, RatingMod(attacker.Ratings().Damage))

	dmg := &Damage{
		Base:         base,
		BaseMax:      hi,
		DamageType:   attacker.DamageType(),
		SneakAttack:  sneakAttackMod > 1.0,
		Recklessness: recklessnessMod,
	}
	amount := base * attributeMod * powerAccuracyMod * damageRatingMod

	skill := attacker.Skill(attacker.WeaponSkill())
	if r.rng.Float64() < r.weapons.CritFrequency(attacker, skill) {
		critMod := 1.0 + r.weapons.CritMultiplier(attacker, skill)
		amount = hi * attributeMod * powerAccuracyMod * sneakAttackMod * critMod
		dmg.Critical = true
		dmg.Recklessness = 1.0
	}

	if target.IsPlayer() {
		dmg.BodyPart = model.BodyPartChest
	} else {
		dmg.BodyPart = r.selectBodyPart(target, a.Height)
	}

	d := dmg.DamageType
	armorMod := ArmorMod(r.armorLevel(target, dmg.BodyPart, d), r.tuning.ArmorDivisor)
	shieldMod := ShieldMod(attacker, target, d, r.tuning.ArmorDivisor)
	slayerMod := SlayerMod(activeWeapon(attacker), target)
	elementalMod := ElementalDamageMod(attacker, d)
	damageResistRatingMod := NegativeRatingMod(target.Ratings().DamageResist)

	amount = (amount + elementalMod) * armorMod * shieldMod * slayerMod * damageResistRatingMod
	if target.IsPlayer() {
		amount *= ResistanceMod(target, source, d)
	}
	dmg.Amount = amount
	return dmg, ResultHit
}

// DamageSource returns the item whose damage range drives the attack: the
// active weapon for melee, the fired ammo for missile.
func DamageSource(attacker creature.Combatant, t model.CombatType) *model.Item {
	if t == model.CombatTypeMissile {
		return attacker.Equipment().MissileAmmo()
	}
	return activeWeapon(attacker)
}

// BaseDamageRange returns the source's damage range, or the unarmed range.
func (r *Resolver) BaseDamageRange(source *model.Item) (float64, float64) {
	if source != nil && source.Template().HasDamage() {
		return source.Template().DamageMin, source.Template().DamageMax
	}
	return r.tuning.UnarmedDamageMin, r.tuning.UnarmedDamageMax
}

// selectBodyPart picks a random body part at the attack height among the
// parts the target has an armor record for.
func (r *Resolver) selectBodyPart(target creature.Combatant, h model.AttackHeight) model.BodyPart {
	parts := model.BodyPartsAt(h)
	if len(parts) == 0 {
		parts = model.BodyPartsAt(model.AttackHeightMedium)
	}
	known := make([]model.BodyPart, 0, len(parts))
	for _, p := range parts {
		if _, ok := target.BodyArmor(p); ok {
			known = append(known, p)
		}
	}
	if len(known) > 0 {
		parts = known
	}
	return parts[r.rng.IntRange(0, len(parts)-1)]
}

// armorLevel sums natural and worn armor of a body part against d.
func (r *Resolver) armorLevel(target creature.Combatant, part model.BodyPart, d model.DamageType) float64 {
	var armor float64
	if natural, ok := target.BodyArmor(part); ok {
		armor += natural.ArmorVs(d)
	}
	if worn := target.Equipment().Armor(part); worn != nil {
		armor += worn.Template().ArmorVs(d)
	}
	return armor
}

func (r *Resolver) onEvade(attacker, target creature.Combatant) {
	defense := target.Skill(defenseSkillFor(attacker.AttackType()))

	if target.Attack().Mode != model.CombatModeNonCombat && defense.Class.TrainedOrBetter() {
		waiver := EvadeStaminaWaiverChance(target.Attribute(model.AttributeEndurance), r.tuning)
		if waiver < r.rng.Float64() {
			target.UpdateVitalDelta(model.VitalStamina, -1)
		}
	} else {
		target.UpdateVitalDelta(model.VitalStamina, -1)
	}

	r.sink.Send(event.EvadeNotification{DefenderID: target.ObjectID(), AttackerName: attacker.Name()})
	r.proficiency.OnSuccessUse(target, defense, attacker.Skill(attacker.WeaponSkill()).Current)
}

func (r *Resolver) applyDamage(attacker, target creature.Combatant, dmg *Damage) (amount, taken uint32, killed bool) {
	amount = uint32(math.Round(math.Max(dmg.Amount, 0)))
	maxHealth := target.Vital(model.VitalHealth).Max
	fraction := 0.0
	if maxHealth > 0 {
		fraction = float64(amount) / float64(maxHealth)
	}

	taken, killed = target.ApplyDamage(amount, attacker.ObjectID())
	if killed {
		r.sink.Send(event.Died{
			AgentID:    target.ObjectID(),
			KillerID:   attacker.ObjectID(),
			DamageType: dmg.DamageType,
			Critical:   dmg.Critical,
		})
		r.sink.Send(event.VitalChanged{ViewerID: attacker.ObjectID(), AgentID: target.ObjectID(), Fraction: 0})
		return amount, taken, true
	}

	if target.IsPlayer() {
		target.UpdateVitalDelta(model.VitalStamina, -1)
	}

	conditions := dmg.Conditions()
	r.sink.Send(event.DefenderNotification{
		DefenderID:     target.ObjectID(),
		AttackerName:   attacker.Name(),
		DamageType:     dmg.DamageType,
		DamageFraction: fraction,
		DamageAmount:   amount,
		BodyPart:       dmg.BodyPart,
		Critical:       dmg.Critical,
		Conditions:     conditions,
	})
	r.sink.Send(event.AttackerNotification{
		AttackerID:     attacker.ObjectID(),
		TargetName:     target.Name(),
		DamageType:     dmg.DamageType,
		DamageFraction: fraction,
		DamageAmount:   amount,
		Critical:       dmg.Critical,
		Conditions:     conditions,
	})

	r.hitCosmetics(attacker, target, fraction)

	if amount > 0 {
		r.sink.Send(event.VitalChanged{
			ViewerID: attacker.ObjectID(),
			AgentID:  target.ObjectID(),
			Fraction: target.Vital(model.VitalHealth).Fraction(),
		})
	}
	return amount, taken, false
}

func (r *Resolver) hitCosmetics(attacker, target creature.Combatant, fraction float64) {
	script := event.Script{
		ObjectID: target.ObjectID(),
		Script:   SplatterScript(attacker.Attack().Height, target.Location(), attacker.Location()),
	}

	if target.IsPlayer() {
		r.sink.Send(event.Sound{ObjectID: target.ObjectID(), Sound: event.SoundHitFlesh1, Volume: 1.0})
		r.sink.Send(script)
		if fraction >= r.tuning.PlayerWoundThreshold {
			r.sink.Send(event.Sound{ObjectID: target.ObjectID(), Sound: event.SoundWound1, Volume: 1.0})
		}
		return
	}

	r.sink.Send(event.Sound{ObjectID: target.ObjectID(), Sound: event.SoundHitFlesh1, Volume: r.tuning.HitSoundVolume})
	if fraction >= r.tuning.CreatureWoundThreshold {
		r.sink.Send(event.Sound{ObjectID: target.ObjectID(), Sound: RandomWoundSound(r.rng), Volume: 1.0})
	}
	r.sink.Send(script)
}

// TakeDamageOverTime applies periodic damage that has no attacker.
func (r *Resolver) TakeDamageOverTime(target creature.Combatant, amount float64, d model.DamageType) (uint32, bool) {
	if target.Invincible() || target.IsDead() {
		return 0, false
	}
	if target.UnderLifestoneProtection() {
		r.sink.Send(event.LifestoneProtected{TargetID: target.ObjectID(), TargetName: target.Name()})
		return 0, false
	}

	n := uint32(math.Round(math.Max(amount, 0)))
	maxHealth := target.Vital(model.VitalHealth).Max
	fraction := 0.0
	if maxHealth > 0 {
		fraction = float64(n) / float64(maxHealth)
	}

	target.UpdateVitalDelta(model.VitalStamina, -1)
	taken, killed := target.ApplyDamage(n, 0)

	nether := d == model.DamageNether
	r.sink.Send(event.PeriodicDamage{AgentID: target.ObjectID(), Amount: n, Nether: nether})
	script := event.ScriptDirtyFightingDamageOverTime
	if nether {
		script = event.ScriptHealthDownVoid
	}
	r.sink.Send(event.Script{ObjectID: target.ObjectID(), Script: script})

	if killed {
		r.sink.Send(event.Died{AgentID: target.ObjectID(), DamageType: d})
		return taken, true
	}
	if fraction >= r.tuning.PlayerWoundThreshold {
		r.sink.Send(event.Sound{ObjectID: target.ObjectID(), Sound: event.SoundWound1, Volume: 1.0})
	}
	return taken, false
}

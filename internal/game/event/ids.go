package event

// SoundID — идентификатор звука клиента.
type SoundID int32

const (
	SoundInvalid SoundID = iota
	SoundWieldObject
	SoundUnwieldObject
	SoundHitFlesh1
	SoundWound1
	SoundWound2
	SoundWound3
)

// WoundSounds are the pain sounds picked at random for heavy hits.
var WoundSounds = [...]SoundID{SoundWound1, SoundWound2, SoundWound3}

// PlayScript — идентификатор визуального эффекта.
type PlayScript int32

const (
	ScriptInvalid PlayScript = iota
	ScriptSplatterUpLeftBack
	ScriptSplatterUpLeftFront
	ScriptSplatterUpRightBack
	ScriptSplatterUpRightFront
	ScriptSplatterMidLeftBack
	ScriptSplatterMidLeftFront
	ScriptSplatterMidRightBack
	ScriptSplatterMidRightFront
	ScriptSplatterLowLeftBack
	ScriptSplatterLowLeftFront
	ScriptSplatterLowRightBack
	ScriptSplatterLowRightFront
	ScriptHealthDownVoid
	ScriptDirtyFightingDamageOverTime
)

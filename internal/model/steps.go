package model

// Dialogue steps. StepMain is the idle/menu state; everything else is a
// position inside a multi-turn flow.
const (
	StepMain = "main"

	StepProfileLanguage  = "profile_language"
	StepProfileName      = "profile_name"
	StepProfileBirthdate = "profile_birthdate"
	StepProfileGender    = "profile_gender"
	StepProfileDelete    = "profile_delete"

	StepTarotSpread = "tarot_spread"

	StepNumerologyMenu            = "numerology_menu"
	StepNumerologyBirthdate       = "numerology_birthdate"
	StepNumerologyName            = "numerology_name"
	StepNumerologySecondBirthdate = "numerology_second_birthdate"

	StepAstroBirthdate = "astro_birthdate"

	StepAdminBroadcast  = "admin_broadcast"
	StepAdminDelay      = "admin_delay"
	StepAdminRefBonus   = "admin_ref_bonus"
	StepAdminRefWelcome = "admin_ref_welcome"
)

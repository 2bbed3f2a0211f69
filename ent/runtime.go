// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/walterairs/just-remember/ent/grammaritem"
	"github.com/walterairs/just-remember/ent/lessonevent"
	"github.com/walterairs/just-remember/ent/reviewevent"
	"github.com/walterairs/just-remember/ent/schema"
	"github.com/walterairs/just-remember/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	grammaritemFields := schema.GrammarItem{}.Fields()
	_ = grammaritemFields
	// grammaritemDescTerm is the schema descriptor for term field.
	grammaritemDescTerm := grammaritemFields[0].Descriptor()
	// grammaritem.TermValidator is a validator for the "term" field. It is called by the builders before save.
	grammaritem.TermValidator = grammaritemDescTerm.Validators[0].(func(string) error)
	// grammaritemDescReading is the schema descriptor for reading field.
	grammaritemDescReading := grammaritemFields[1].Descriptor()
	// grammaritem.DefaultReading holds the default value on creation for the reading field.
	grammaritem.DefaultReading = grammaritemDescReading.Default.(string)
	// grammaritemDescUsage is the schema descriptor for usage field.
	grammaritemDescUsage := grammaritemFields[2].Descriptor()
	// grammaritem.DefaultUsage holds the default value on creation for the usage field.
	grammaritem.DefaultUsage = grammaritemDescUsage.Default.(string)
	// grammaritemDescMeaning is the schema descriptor for meaning field.
	grammaritemDescMeaning := grammaritemFields[3].Descriptor()
	// grammaritem.DefaultMeaning holds the default value on creation for the meaning field.
	grammaritem.DefaultMeaning = grammaritemDescMeaning.Default.(string)
	// grammaritemDescExample1Ja is the schema descriptor for example1_ja field.
	grammaritemDescExample1Ja := grammaritemFields[4].Descriptor()
	// grammaritem.DefaultExample1Ja holds the default value on creation for the example1_ja field.
	grammaritem.DefaultExample1Ja = grammaritemDescExample1Ja.Default.(string)
	// grammaritemDescExample1En is the schema descriptor for example1_en field.
	grammaritemDescExample1En := grammaritemFields[5].Descriptor()
	// grammaritem.DefaultExample1En holds the default value on creation for the example1_en field.
	grammaritem.DefaultExample1En = grammaritemDescExample1En.Default.(string)
	// grammaritemDescExample2Ja is the schema descriptor for example2_ja field.
	grammaritemDescExample2Ja := grammaritemFields[6].Descriptor()
	// grammaritem.DefaultExample2Ja holds the default value on creation for the example2_ja field.
	grammaritem.DefaultExample2Ja = grammaritemDescExample2Ja.Default.(string)
	// grammaritemDescExample2En is the schema descriptor for example2_en field.
	grammaritemDescExample2En := grammaritemFields[7].Descriptor()
	// grammaritem.DefaultExample2En holds the default value on creation for the example2_en field.
	grammaritem.DefaultExample2En = grammaritemDescExample2En.Default.(string)
	// grammaritemDescNote is the schema descriptor for note field.
	grammaritemDescNote := grammaritemFields[8].Descriptor()
	// grammaritem.DefaultNote holds the default value on creation for the note field.
	grammaritem.DefaultNote = grammaritemDescNote.Default.(string)
	// grammaritemDescStage is the schema descriptor for stage field.
	grammaritemDescStage := grammaritemFields[9].Descriptor()
	// grammaritem.DefaultStage holds the default value on creation for the stage field.
	grammaritem.DefaultStage = grammaritemDescStage.Default.(string)
	// grammaritemDescLessonStatus is the schema descriptor for lesson_status field.
	grammaritemDescLessonStatus := grammaritemFields[10].Descriptor()
	// grammaritem.DefaultLessonStatus holds the default value on creation for the lesson_status field.
	grammaritem.DefaultLessonStatus = grammaritemDescLessonStatus.Default.(string)
	// grammaritemDescCorrectCount is the schema descriptor for correct_count field.
	grammaritemDescCorrectCount := grammaritemFields[12].Descriptor()
	// grammaritem.DefaultCorrectCount holds the default value on creation for the correct_count field.
	grammaritem.DefaultCorrectCount = grammaritemDescCorrectCount.Default.(int)
	// grammaritem.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	grammaritem.CorrectCountValidator = grammaritemDescCorrectCount.Validators[0].(func(int) error)
	// grammaritemDescIncorrectCount is the schema descriptor for incorrect_count field.
	grammaritemDescIncorrectCount := grammaritemFields[13].Descriptor()
	// grammaritem.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	grammaritem.DefaultIncorrectCount = grammaritemDescIncorrectCount.Default.(int)
	// grammaritem.IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	grammaritem.IncorrectCountValidator = grammaritemDescIncorrectCount.Validators[0].(func(int) error)
	// grammaritemDescCreatedAt is the schema descriptor for created_at field.
	grammaritemDescCreatedAt := grammaritemFields[15].Descriptor()
	// grammaritem.DefaultCreatedAt holds the default value on creation for the created_at field.
	grammaritem.DefaultCreatedAt = grammaritemDescCreatedAt.Default.(func() time.Time)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescStarted is the schema descriptor for started field.
	lessoneventDescStarted := lessoneventFields[0].Descriptor()
	// lessonevent.StartedValidator is a validator for the "started" field. It is called by the builders before save.
	lessonevent.StartedValidator = lessoneventDescStarted.Validators[0].(func(int) error)
	// lessoneventDescRequestedLimit is the schema descriptor for requested_limit field.
	lessoneventDescRequestedLimit := lessoneventFields[1].Descriptor()
	// lessonevent.RequestedLimitValidator is a validator for the "requested_limit" field. It is called by the builders before save.
	lessonevent.RequestedLimitValidator = lessoneventDescRequestedLimit.Validators[0].(func(int) error)
	// lessoneventDescTrigger is the schema descriptor for trigger field.
	lessoneventDescTrigger := lessoneventFields[2].Descriptor()
	// lessonevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	lessonevent.TriggerValidator = lessoneventDescTrigger.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[1].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(int) error)
	// revieweventDescStageFrom is the schema descriptor for stage_from field.
	revieweventDescStageFrom := revieweventFields[2].Descriptor()
	// reviewevent.StageFromValidator is a validator for the "stage_from" field. It is called by the builders before save.
	reviewevent.StageFromValidator = revieweventDescStageFrom.Validators[0].(func(string) error)
	// revieweventDescStageTo is the schema descriptor for stage_to field.
	revieweventDescStageTo := revieweventFields[3].Descriptor()
	// reviewevent.StageToValidator is a validator for the "stage_to" field. It is called by the builders before save.
	reviewevent.StageToValidator = revieweventDescStageTo.Validators[0].(func(string) error)
	// revieweventDescMatchScore is the schema descriptor for match_score field.
	revieweventDescMatchScore := revieweventFields[5].Descriptor()
	// reviewevent.DefaultMatchScore holds the default value on creation for the match_score field.
	reviewevent.DefaultMatchScore = revieweventDescMatchScore.Default.(int)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
}

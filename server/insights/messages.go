package insights

// Card names are part of the rendering contract and must not change.
const (
	CardCoursesEnrolled  = "Number of Courses Enrolled"
	CardCoursesCompleted = "Number of Courses Completed"
	CardReviewsSubmitted = "Number of Reviews Submitted"
	CardMaxCalorie       = "Maximum Calorie Intake in a Day"
	CardMinCalorie       = "Minimum Calorie Intake in a Day"
	CardAvgCalorie       = "Average Calorie Intake per Day"
	CardMaxWater         = "Maximum Water Intake in a Day"
	CardMinWater         = "Minimum Water Intake in a Day"
	CardAvgWater         = "Average Water Intake per Day"
	CardMaxBurnout       = "Maximum Burnout in a Day"
	CardMinBurnout       = "Minimum Burnout in a Day"
	CardAvgBurnout       = "Average Burnout per Day"
)

const (
	msgEnrollNudge      = "No worries. Let's get enrolled in your favorite course !"
	msgCompleteNudge    = "No worries. Let's get your first course completed"
	msgReviewNudge      = "It's never late to submit your review"
	msgNoCalorieRecords = "No records on Calorie Intake"
	msgNoWaterRecords   = "No records on Water Intake"
	msgNoBurnoutRecords = "No records on Burnout"
	msgCalorieInBand    = "It is always good to maintain around 2000 calories per day"
	msgCalorieOutBand   = "Recommended 2000 calories in a day"
	msgWaterInBand      = "It is always good to maintain 2-3 litres of water per day"
	msgWaterOutBand     = "Recommended 2-3 litres of water in a day"
	msgBurnoutInBand    = "You are doing great !"
	msgBurnoutOutBand   = "Recommended a burnout of about 2000 calories in a day"
)

// Average-card message bands, inclusive on both ends. The floored mean
// is classified against these.
type band struct {
	lo, hi   int64
	inBand   string
	outBand  string
	noRecord string
}

var (
	calorieBand = band{lo: 1900, hi: 2100, inBand: msgCalorieInBand, outBand: msgCalorieOutBand, noRecord: msgNoCalorieRecords}
	waterBand   = band{lo: 1900, hi: 4000, inBand: msgWaterInBand, outBand: msgWaterOutBand, noRecord: msgNoWaterRecords}
	burnoutBand = band{lo: 1500, hi: 2900, inBand: msgBurnoutInBand, outBand: msgBurnoutOutBand, noRecord: msgNoBurnoutRecords}
)

func (b band) classify(mean int64) string {
	if mean >= b.lo && mean <= b.hi {
		return b.inBand
	}
	return b.outBand
}

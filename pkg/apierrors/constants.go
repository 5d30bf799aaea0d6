package apierrors

const (
	MsgInvalidTaskID        = "invalidTaskID"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgTaskNotFound         = "taskNotFound"
	MsgFailListTasks        = "failListTasks"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgInvalidTransition    = "invalidStatusTransition"
	MsgInvalidPaymentID     = "invalidPaymentID"
	MsgInvalidPaymentBody   = "invalidPaymentPayload"
	MsgPaymentNotFound      = "paymentNotFound"
	MsgFailListPayments     = "failListPayments"
	MsgFailCreatePayment    = "failCreatePayment"
	MsgFailUpdatePayment    = "failUpdatePayment"
	MsgFailDeletePayment    = "failDeletePayment"
	MsgInvalidPaidAmount    = "invalidPaidAmount"
	MsgInvalidProjectID     = "invalidProjectID"
	MsgInvalidProjectBody   = "invalidProjectPayload"
	MsgProjectNotFound      = "projectNotFound"
	MsgFailListProjects     = "failListProjects"
	MsgFailCreateProject    = "failCreateProject"
	MsgFailUpdateProject    = "failUpdateProject"
	MsgFailDeleteProject    = "failDeleteProject"
	MsgInvalidProjectStage  = "invalidProjectStage"
	MsgInvalidRatingBody    = "invalidRatingPayload"
	MsgRatingNotFound       = "ratingNotFound"
	MsgFailListRatings      = "failListRatings"
	MsgFailCreateRating     = "failCreateRating"
	MsgFailDeleteRating     = "failDeleteRating"
	MsgInvalidRatingID      = "invalidRatingID"
	MsgInvalidMeetingBody   = "invalidMeetingPayload"
	MsgMeetingNotFound      = "meetingNotFound"
	MsgFailListMeetings     = "failListMeetings"
	MsgFailCreateMeeting    = "failCreateMeeting"
	MsgFailDeleteMeeting    = "failDeleteMeeting"
	MsgInvalidMeetingID     = "invalidMeetingID"
	MsgProfileNotFound      = "profileNotFound"
	MsgFailListProfiles     = "failListProfiles"
	MsgInvalidProfileID     = "invalidProfileID"
	MsgInvalidAnalyticsSpan = "invalidAnalyticsRange"
	MsgFailBuildAnalytics   = "failBuildAnalytics"
)

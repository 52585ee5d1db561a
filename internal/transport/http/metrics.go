package httptransport

import "expvar"

var (
	metricSessionSubmitTotal  = expvar.NewInt("session_submit_total")
	metricSessionSubmitErrors = expvar.NewInt("session_submit_errors_total")

	metricClaimTotal  = expvar.NewInt("claim_total")
	metricClaimErrors = expvar.NewInt("claim_errors_total")
	metricClaimEmpty  = expvar.NewInt("claim_empty_total")

	metricWebhookTotal     = expvar.NewInt("stripe_webhook_total")
	metricWebhookErrors    = expvar.NewInt("stripe_webhook_errors_total")
	metricWebhookDuplicate = expvar.NewInt("stripe_webhook_duplicate_total")
)

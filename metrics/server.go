package metrics

import (
	"expvar"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Expvar metrics (legacy)
	TurnCount              = expvar.NewInt("turn_count")
	EmptyInputCount        = expvar.NewInt("empty_input_count")
	GreetingOverrideCount  = expvar.NewInt("greeting_override_count")
	VideoSearchSuccess     = expvar.NewInt("video_search_success_count")
	VideoSearchFail        = expvar.NewInt("video_search_fail_count")
	VideoSearchEmpty       = expvar.NewInt("video_search_empty_count")
	FeedbackCount          = expvar.NewInt("feedback_count")
	AuditWriteFailCount    = expvar.NewInt("audit_write_fail_count")
	EmptyLLMResponseCount  = expvar.NewInt("empty_llm_response_count")
	SuccessfulLLMGenCount  = expvar.NewInt("successful_llm_gen_count")
	FailedLLMGenCount      = expvar.NewInt("failed_llm_gen_count")
	DiscordMessageRecieved = expvar.NewInt("discord_message_recieved")
	DiscordMessageSent     = expvar.NewInt("discord_message_sent")

	// Prometheus metrics with labels
	TurnsByMode = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Total number of conversational turns by personality mode",
		},
		[]string{"mode"},
	)

	TurnsByEmotion = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_by_emotion_total",
			Help: "Total number of conversational turns by detected emotion",
		},
		[]string{"emotion"},
	)

	FeedbackScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedback_score",
			Help:    "Distribution of user feedback scores (0-1)",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	ResponseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_duration_seconds",
			Help:    "Duration of classify and respond per turn in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

type Server struct {
	*http.Server
}

func SetupServer() *Server {

	// pprof is setup by importing the net/http/pprof package
	server := &http.Server{
		Addr:         ":6060",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// setup expvar cache
	TurnCount.Set(0)
	EmptyInputCount.Set(0)
	GreetingOverrideCount.Set(0)
	VideoSearchSuccess.Set(0)
	VideoSearchFail.Set(0)
	VideoSearchEmpty.Set(0)
	FeedbackCount.Set(0)
	AuditWriteFailCount.Set(0)
	EmptyLLMResponseCount.Set(0)
	SuccessfulLLMGenCount.Set(0)
	FailedLLMGenCount.Set(0)
	DiscordMessageRecieved.Set(0)
	DiscordMessageSent.Set(0)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewExpvarCollector(
			map[string]*prometheus.Desc{
				"turn_count":                 prometheus.NewDesc("turn_count", "number of completed conversational turns", nil, nil),
				"empty_input_count":          prometheus.NewDesc("empty_input_count", "number of empty inputs that were re-prompted", nil, nil),
				"greeting_override_count":    prometheus.NewDesc("greeting_override_count", "number of turns answered by the greeting override", nil, nil),
				"video_search_success_count": prometheus.NewDesc("video_search_success_count", "number of successful video searches", nil, nil),
				"video_search_fail_count":    prometheus.NewDesc("video_search_fail_count", "number of failed video searches", nil, nil),
				"video_search_empty_count":   prometheus.NewDesc("video_search_empty_count", "number of video searches with zero results", nil, nil),
				"feedback_count":             prometheus.NewDesc("feedback_count", "number of feedback scores submitted", nil, nil),
				"audit_write_fail_count":     prometheus.NewDesc("audit_write_fail_count", "number of audit store writes that failed", nil, nil),
				"empty_llm_response_count":   prometheus.NewDesc("empty_llm_response_count", "number of times the llm responded with an empty string", nil, nil),
				"successful_llm_gen_count":   prometheus.NewDesc("successful_llm_gen_count", "number of times the llm generated a valid response", nil, nil),
				"failed_llm_gen_count":       prometheus.NewDesc("failed_llm_gen_count", "number of errors during llm generation", nil, nil),
				"discord_message_recieved":   prometheus.NewDesc("discord_message_recieved", "number of times discord received a message", nil, nil),
				"discord_message_sent":       prometheus.NewDesc("discord_message_sent", "number of times discord sent a message", nil, nil),
			},
		),
		TurnsByMode,
		TurnsByEmotion,
		FeedbackScores,
		ResponseDuration,
	)

	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	http.HandleFunc("/healthz", healthzHandler)
	return &Server{server}
}

// healthzHandler returns a simple health check response
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) Run() {
	_ = s.ListenAndServe()
}

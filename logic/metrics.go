package logic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"federblog/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks federblog/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	PostPublished()
	DeliverySucceeded()
	DeliveryFailed()
	InteractionReceived(label string)
	ServiceStarted()
	TotalFollowers(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                  *shared.Config
	webRequestsIn        *prometheus.HistogramVec
	apubRequestsIn       *prometheus.HistogramVec
	apubRequestsOut      *prometheus.HistogramVec
	postsPublished       prometheus.Counter
	deliveriesSucceeded  prometheus.Counter
	deliveriesFailed     prometheus.Counter
	interactionsReceived *prometheus.CounterVec
	serviceStarted       prometheus.Counter
	totalFollowers       prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of ActivityPub requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.postsPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_published",
		Help: "Number of posts federated to followers",
	})
	prometheus.Register(res.postsPublished)

	res.deliveriesSucceeded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_succeeded",
		Help: "Number of successful activity deliveries",
	})
	prometheus.Register(res.deliveriesSucceeded)

	res.deliveriesFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_failed",
		Help: "Number of failed activity deliveries",
	})
	prometheus.Register(res.deliveriesFailed)

	res.interactionsReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "interactions_received",
		Help: "Number of interactions recorded from remote actors",
	}, []string{"label"})
	prometheus.Register(res.interactionsReceived)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total follower count of the site's actor",
	})
	prometheus.Register(res.totalFollowers)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) PostPublished() {
	m.postsPublished.Add(1)
}

func (m *metrics) DeliverySucceeded() {
	m.deliveriesSucceeded.Add(1)
}

func (m *metrics) DeliveryFailed() {
	m.deliveriesFailed.Add(1)
}

func (m *metrics) InteractionReceived(label string) {
	m.interactionsReceived.WithLabelValues(label).Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

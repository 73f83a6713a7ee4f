package service

import "time"

// MetricsRecorder records operational metrics of the navigation engine
type MetricsRecorder interface {
	ObserveDirections(provider string, elapsed time.Duration, err error)
	ObserveDirectionsCache(hit bool)
	ObserveClustering(points, hotspots int, elapsed time.Duration)
	ObserveNavigationEvent(eventType NavigationEventType)
	SetActiveSessions(n int)
}

// NopMetrics discards every observation
type NopMetrics struct{}

func (NopMetrics) ObserveDirections(string, time.Duration, error) {}
func (NopMetrics) ObserveDirectionsCache(bool)                    {}
func (NopMetrics) ObserveClustering(int, int, time.Duration)      {}
func (NopMetrics) ObserveNavigationEvent(NavigationEventType)     {}
func (NopMetrics) SetActiveSessions(int)                          {}

package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

func TestStatsService_Trends(t *testing.T) {
	gw := &stubGateway{doFn: func(context.Context, ports.Request) (*ports.Response, error) {
		return okJSON(`[{
			"experienceLevels":[{"_id":"Senior","count":"12"},{"_id":"Junior","count":0}],
			"locations":[{"_id":null,"count":"5 jobs"}],
			"applicationsHistogram":[{"_id":0,"count":3},{"_id":"500+","count":1}]
		}]`)
	}}
	svc := NewStatsService(gw, "/api/v1/statscharts", zerolog.Nop())

	trends, err := svc.Trends(context.Background())
	if err != nil {
		t.Fatalf("Trends returned error: %v", err)
	}
	if len(trends.ExperienceLevels) != 2 || trends.ExperienceLevels[1].Count != 0 {
		t.Fatalf("unexpected experience levels: %+v", trends.ExperienceLevels)
	}
	if trends.Locations[0] != (domain.AggregateBucket{Key: "Unknown", Count: 5}) {
		t.Fatalf("unexpected location bucket: %+v", trends.Locations[0])
	}
	if trends.Sectors == nil || len(trends.Sectors) != 0 {
		t.Fatalf("expected empty sectors, got %#v", trends.Sectors)
	}
}

func TestStatsService_Trends_EmptyReply(t *testing.T) {
	gw := &stubGateway{doFn: func(context.Context, ports.Request) (*ports.Response, error) {
		return okJSON(`[]`)
	}}
	svc := NewStatsService(gw, "/api/v1/statscharts", zerolog.Nop())

	trends, err := svc.Trends(context.Background())
	if err != nil {
		t.Fatalf("Trends returned error: %v", err)
	}
	if len(trends.Titles) != 0 || len(trends.TitlesVsCompanies) != 0 {
		t.Fatalf("expected empty series, got %+v", trends)
	}
}

func TestStatsService_Trends_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server error without message", &domain.RejectedError{StatusCode: 500}, "Server error: 500"},
		{"server error with message", &domain.RejectedError{StatusCode: 500, Message: "Data processing failed"}, "Data processing failed"},
		{"timeout", domain.ErrTimeout, "Loading statistics timed out."},
		{"unreachable", domain.ErrNetworkUnreachable, "Unable to reach the statistics service."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{doFn: func(context.Context, ports.Request) (*ports.Response, error) {
				return nil, tt.err
			}}
			svc := NewStatsService(gw, "/api/v1/statscharts", zerolog.Nop())

			_, err := svc.Trends(context.Background())
			if got := actionMessage(t, err); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStatsService_MalformedReplyIsUnexpected(t *testing.T) {
	gw := &stubGateway{doFn: func(context.Context, ports.Request) (*ports.Response, error) {
		return okJSON(`<html>`)
	}}
	svc := NewStatsService(gw, "/api/v1/statscharts", zerolog.Nop())

	_, err := svc.Trends(context.Background())
	if domain.Classify(err) != domain.KindUnexpected {
		t.Fatalf("expected unexpected outcome, got %v", err)
	}
}

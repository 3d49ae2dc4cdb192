package catalog

import "context"

type StaticProvider struct {
	entries []Entry
}

func NewStaticProvider(entries []Entry) *StaticProvider {
	return &StaticProvider{entries: entries}
}

func (p *StaticProvider) Load(ctx context.Context) ([]Entry, error) {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out, nil
}

// SampleEntries is the built-in catalog served when no other source is configured.
func SampleEntries() []Entry {
	return []Entry{
		{
			ID:           "v1",
			Title:        "Recognizing Signs of Dehydration",
			Category:     "Health Cautions",
			Description:  "How to spot dehydration early and what first-aid steps to take at home.",
			ThumbnailURL: "https://img.youtube.com/vi/1roy4o4tqQM/maxresdefault.jpg",
			EmbedURL:     "https://www.youtube.com/embed/1roy4o4tqQM",
		},
		{
			ID:           "v2",
			Title:        "Daily Breathing Exercises for Stress",
			Category:     "Tips",
			Description:  "Short breathing routines you can do anytime to reduce anxiety and improve focus.",
			ThumbnailURL: "https://img.youtube.com/vi/1vx8iUvfyCY/maxresdefault.jpg",
			EmbedURL:     "https://www.youtube.com/embed/1vx8iUvfyCY",
		},
		{
			ID:           "v3",
			Title:        "How to Use an Inhaler Correctly",
			Category:     "How-tos",
			Description:  "Step-by-step demo to ensure effective medication delivery for asthma inhalers.",
			ThumbnailURL: "https://img.youtube.com/vi/gz5Qf6yYp5s/hqdefault.jpg",
			EmbedURL:     "https://www.youtube.com/embed/gz5Qf6yYp5s",
		},
		{
			ID:           "v4",
			Title:        "Preventing Falls at Home",
			Category:     "Health Cautions",
			Description:  "Practical tips to reduce trip hazards and keep loved ones safe at home.",
			ThumbnailURL: "https://img.youtube.com/vi/7s2eZgXq3Nw/hqdefault.jpg",
			EmbedURL:     "https://www.youtube.com/embed/7s2eZgXq3Nw",
		},
		{
			ID:           "v5",
			Title:        "Healthy Eating: Simple Plate Tips",
			Category:     "Tips",
			Description:  "Create balanced meals quickly using visual plate guidelines and swaps.",
			ThumbnailURL: "https://img.youtube.com/vi/1x1x1x1x1x1/hqdefault.jpg",
			EmbedURL:     "https://www.youtube.com/embed/1x1x1x1x1x1",
		},
		{
			ID:           "v6",
			Title:        "Knee Care: Simple Strengthening Exercises",
			Category:     "How-tos",
			Description:  "Gentle home exercises to strengthen muscles around the knee joint.",
			ThumbnailURL: "https://img.youtube.com/vi/gC_L9qAHVJ8/hqdefault.jpg",
			EmbedURL:     "https://www.youtube.com/embed/gC_L9qAHVJ8",
		},
	}
}

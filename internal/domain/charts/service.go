package charts

import (
	"context"

	"pet-shelter/internal/domain/adoptions"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/medical"
	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/dates"

	"golang.org/x/sync/errgroup"
)

type AnimalLister interface {
	List(ctx context.Context, f animals.Filter) ([]animals.Animal, error)
}

type AdoptionLister interface {
	List(ctx context.Context, f adoptions.Filter) ([]adoptions.Adoption, error)
}

type MedicalLister interface {
	List(ctx context.Context, f medical.Filter) ([]medical.Record, error)
}

type Service struct {
	animals   AnimalLister
	adoptions AdoptionLister
	medical   MedicalLister
}

func NewService(an AnimalLister, ad AdoptionLister, md MedicalLister) *Service {
	return &Service{animals: an, adoptions: ad, medical: md}
}

// ParseRange valida start_date / end_date de la query.
func ParseRange(start, end string) (Range, error) {
	var r Range
	s, e := dates.Parse(start), dates.Parse(end)
	if s.State == dates.Invalid {
		return Range{}, apperr.Invalid("start_date", s.Reason)
	}
	if e.State == dates.Invalid {
		return Range{}, apperr.Invalid("end_date", e.Reason)
	}
	if s.OK() {
		r.Start, r.HasStart = s.Day, true
	}
	if e.OK() {
		r.End, r.HasEnd = e.Day, true
	}
	if r.HasStart && r.HasEnd && r.Start.After(r.End) {
		return Range{}, apperr.Invalid("start_date", "must not be after end_date")
	}
	return r, nil
}

func (s *Service) Distribution(ctx context.Context, grouped Field, f animals.Filter) (Series, error) {
	items, err := s.animals.List(ctx, animals.Filter{})
	if err != nil {
		return Series{}, err
	}
	return Distribution(items, grouped, f), nil
}

func (s *Service) AgeDistribution(ctx context.Context, f animals.Filter) (Series, error) {
	items, err := s.animals.List(ctx, animals.Filter{})
	if err != nil {
		return Series{}, err
	}
	return AgeDistribution(items, f), nil
}

func (s *Service) MonthlyAdoptions(ctx context.Context, r Range) (TimeSeries, error) {
	items, err := s.adoptions.List(ctx, adoptions.Filter{})
	if err != nil {
		return TimeSeries{}, err
	}
	raw := make([]string, 0, len(items))
	for _, a := range items {
		raw = append(raw, a.AdoptionDate)
	}
	return Monthly(raw, r), nil
}

func (s *Service) MonthlyVisits(ctx context.Context, r Range) (TimeSeries, error) {
	items, err := s.medical.List(ctx, medical.Filter{})
	if err != nil {
		return TimeSeries{}, err
	}
	raw := make([]string, 0, len(items))
	for _, m := range items {
		raw = append(raw, m.VisitDate)
	}
	return Monthly(raw, r), nil
}

// VisitsBy cuenta visitas médicas por especie o raza del animal.
// Registros cuyo animal no existe se omiten y se cuentan en unresolved.
func (s *Service) VisitsBy(ctx context.Context, grouped Field, r Range) (TimeSeries, error) {
	var (
		all     []animals.Animal
		records []medical.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = s.animals.List(gctx, animals.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.medical.List(gctx, medical.Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return TimeSeries{}, err
	}

	return VisitsBy(all, records, grouped, r), nil
}

// VisitsBy es la parte pura de Service.VisitsBy.
func VisitsBy(all []animals.Animal, records []medical.Record, grouped Field, r Range) TimeSeries {
	byID := make(map[string]animals.Animal, len(all))
	for _, a := range all {
		byID[a.ID] = a
	}

	meta := Metadata{Total: len(records)}
	if r.HasStart {
		meta.StartDate = dates.Format(r.Start)
	}
	if r.HasEnd {
		meta.EndDate = dates.Format(r.End)
	}

	c := newCounter()
	for _, rec := range records {
		res := dates.Parse(rec.VisitDate)
		if !res.OK() {
			meta.InvalidDates++
			continue
		}
		if !r.contains(res.Day) {
			meta.OutOfRange++
			continue
		}
		a, ok := byID[rec.AnimalID]
		if !ok {
			meta.Unresolved++
			continue
		}
		label := fieldValue(a, grouped)
		if label == "" {
			label = "Unknown"
		}
		c.add(label)
	}

	series := c.byCount()
	return TimeSeries{Labels: series.Labels, Data: series.Data, Metadata: meta}
}

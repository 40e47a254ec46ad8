package charts

import (
	"sort"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/dates"
)

// counter cuenta preservando el orden de primera aparición.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter { return &counter{counts: map[string]int{}} }

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// byCount: descendente por conteo, empates por primera aparición.
func (c *counter) byCount() Series {
	labels := append([]string(nil), c.order...)
	sort.SliceStable(labels, func(i, j int) bool { return c.counts[labels[i]] > c.counts[labels[j]] })
	return c.series(labels)
}

func (c *counter) series(labels []string) Series {
	out := Series{Labels: make([]string, 0, len(labels)), Data: make([]int, 0, len(labels))}
	for _, l := range labels {
		out.Labels = append(out.Labels, l)
		out.Data = append(out.Data, c.counts[l])
	}
	return out
}

func fieldValue(a animals.Animal, f Field) string {
	switch f {
	case FieldSpecies:
		return a.Species
	case FieldStatus:
		return string(a.Status)
	case FieldGender:
		return a.Gender
	case FieldBreed:
		return a.Breed
	}
	return ""
}

// matches aplica el filtro cruzado; el campo agrupado no se filtra.
func matches(a animals.Animal, f animals.Filter, grouped Field) bool {
	check := func(field Field, want string) bool {
		return field == grouped || want == "" || fieldValue(a, field) == want
	}
	return check(FieldSpecies, f.Species) &&
		check(FieldStatus, f.Status) &&
		check(FieldGender, f.Gender) &&
		check(FieldBreed, f.Breed)
}

// Distribution agrupa animales por un campo. Los valores vacíos se omiten.
func Distribution(items []animals.Animal, grouped Field, f animals.Filter) Series {
	c := newCounter()
	for _, a := range items {
		if !matches(a, f, grouped) {
			continue
		}
		if v := fieldValue(a, grouped); v != "" {
			c.add(v)
		}
	}
	if grouped != FieldStatus {
		return c.byCount()
	}

	labels := make([]string, 0, len(c.order))
	for _, s := range animals.Statuses {
		if c.counts[s] > 0 {
			labels = append(labels, s)
		}
	}
	for _, l := range c.order {
		if !animals.IsStatus(l) {
			labels = append(labels, l)
		}
	}
	return c.series(labels)
}

func ageBucket(age int) string {
	switch {
	case age <= 1:
		return "0-1"
	case age <= 3:
		return "2-3"
	case age <= 6:
		return "4-6"
	case age <= 10:
		return "7-10"
	default:
		return "11+"
	}
}

// AgeDistribution siempre devuelve los cinco buckets, con ceros.
func AgeDistribution(items []animals.Animal, f animals.Filter) Series {
	c := newCounter()
	for _, a := range items {
		if matches(a, f, "") {
			c.add(ageBucket(a.Age))
		}
	}
	return c.series(AgeBuckets)
}

// Range es un rango de fechas opcional en ambos extremos.
type Range struct {
	Start, End       time.Time
	HasStart, HasEnd bool
}

func (r Range) contains(day time.Time) bool {
	if r.HasStart && day.Before(r.Start) {
		return false
	}
	if r.HasEnd && day.After(r.End) {
		return false
	}
	return true
}

// Monthly cuenta fechas por mes YYYY-MM.
//   - con inicio y fin: todos los meses del rango;
//   - solo inicio: de start al último evento (o start);
//   - solo fin: del primer evento (o end) a end;
//   - sin rango: solo meses con datos, ordenados.
func Monthly(raw []string, r Range) TimeSeries {
	meta := Metadata{Total: len(raw)}
	if r.HasStart {
		meta.StartDate = dates.Format(r.Start)
	}
	if r.HasEnd {
		meta.EndDate = dates.Format(r.End)
	}

	counts := map[string]int{}
	var first, last time.Time
	seen := false
	for _, s := range raw {
		res := dates.Parse(s)
		if !res.OK() {
			meta.InvalidDates++
			continue
		}
		if !r.contains(res.Day) {
			meta.OutOfRange++
			continue
		}
		counts[dates.MonthLabel(res.Day)]++
		if !seen || res.Day.Before(first) {
			first = res.Day
		}
		if !seen || res.Day.After(last) {
			last = res.Day
		}
		seen = true
	}

	var labels []string
	switch {
	case r.HasStart && r.HasEnd:
		labels = dates.MonthSpan(r.Start, r.End)
	case r.HasStart:
		end := r.Start
		if seen && last.After(end) {
			end = last
		}
		labels = dates.MonthSpan(r.Start, end)
	case r.HasEnd:
		start := r.End
		if seen && first.Before(start) {
			start = first
		}
		labels = dates.MonthSpan(start, r.End)
	default:
		labels = make([]string, 0, len(counts))
		for m := range counts {
			labels = append(labels, m)
		}
		sort.Strings(labels)
	}

	out := TimeSeries{Labels: labels, Data: make([]int, len(labels)), Metadata: meta}
	for i, m := range labels {
		out.Data[i] = counts[m]
	}
	return out
}

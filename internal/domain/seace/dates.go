// Package seace implementa el motor de plazos y avance del seguimiento de
// procesos de selección: aritmética de días, completitud de etapas, candado
// de progresión y validación de plazos legales. Son funciones puras sobre el
// estado del formulario en memoria; la capa de presentación las invoca en
// cada edición.
package seace

import "time"

// DateLayout formato de fecha del estado de formulario y de la API.
const DateLayout = "2006-01-02"

// CalendarDays devuelve los días calendario transcurridos entre start y end.
// Devuelve 0 si alguna fecha es nil o si end es anterior a start.
func CalendarDays(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	s := truncateDay(*start)
	e := truncateDay(*end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours() / 24)
}

// BusinessDays cuenta los días hábiles (lunes a viernes, sin feriados) entre
// start y end, ambos inclusive. Devuelve 0 bajo las mismas guardas que
// CalendarDays. Recorre día a día: los rangos reales son de a lo sumo unos
// cientos de días, la corrección importa más que el atajo cerrado.
func BusinessDays(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	s := truncateDay(*start)
	e := truncateDay(*end)
	if e.Before(s) {
		return 0
	}
	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// AddCalendarDays proyecta una fecha sumando n días calendario. Se usa para
// mostrar la fecha programada de un plazo; no existe variante en días hábiles.
func AddCalendarDays(date time.Time, n int) time.Time {
	return truncateDay(date).AddDate(0, 0, n)
}

// ParseDate interpreta un valor de formulario como fecha. Devuelve nil sin
// error si el valor está vacío (el campo aún no fue llenado).
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

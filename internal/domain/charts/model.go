package charts

// Series es la forma que consumen los gráficos de torta y barras.
type Series struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Metadata acompaña a las series temporales.
type Metadata struct {
	Total        int    `json:"total"`
	InvalidDates int    `json:"invalid_dates"`
	OutOfRange   int    `json:"out_of_range"`
	Unresolved   int    `json:"unresolved,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

type TimeSeries struct {
	Labels   []string `json:"labels"`
	Data     []int    `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// Field es el campo categórico por el que se agrupa.
type Field string

const (
	FieldSpecies Field = "species"
	FieldStatus  Field = "status"
	FieldGender  Field = "gender"
	FieldBreed   Field = "breed"
)

// AgeBuckets en orden fijo de salida.
var AgeBuckets = []string{"0-1", "2-3", "4-6", "7-10", "11+"}

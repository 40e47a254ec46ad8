package predictions

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	logisticEpochs = 500
	logisticRate   = 0.1
	logisticL2     = 0.01
	ridgeLambda    = 1.0
)

var errNoRows = errors.New("no training rows")

// Scaler estandariza columnas con la media y el desvío del entrenamiento.
type Scaler struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

func fitScaler(X [][]float64) Scaler {
	p := len(X[0])
	sc := Scaler{Mean: make([]float64, p), Std: make([]float64, p)}
	col := make([]float64, len(X))
	for j := 0; j < p; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if math.IsNaN(std) || std == 0 {
			std = 1
		}
		sc.Mean[j], sc.Std[j] = mean, std
	}
	return sc
}

func (s Scaler) apply(x []float64) []float64 {
	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Mean[j]) / s.Std[j]
	}
	return out
}

// Linear es un modelo lineal sobre entradas estandarizadas.
type Linear struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Scaler  Scaler    `json:"scaler"`
}

func (m Linear) raw(x []float64) (float64, error) {
	if len(x) != len(m.Weights) {
		return 0, fmt.Errorf("expected %d inputs, got %d", len(m.Weights), len(x))
	}
	return m.Bias + floats.Dot(m.Weights, m.Scaler.apply(x)), nil
}

// Probability: salida del clasificador logístico.
func (m Linear) Probability(x []float64) (float64, error) {
	z, err := m.raw(x)
	if err != nil {
		return 0, err
	}
	return sigmoid(z), nil
}

// Predict: salida del regresor.
func (m Linear) Predict(x []float64) (float64, error) { return m.raw(x) }

func sigmoid(z float64) float64 { return 1 / (1 + math.Exp(-z)) }

// fitLogistic entrena por descenso de gradiente con regularización L2.
func fitLogistic(X [][]float64, y []float64) (Linear, error) {
	if len(X) == 0 {
		return Linear{}, errNoRows
	}
	sc := fitScaler(X)
	Z := make([][]float64, len(X))
	for i, x := range X {
		Z[i] = sc.apply(x)
	}

	n, p := float64(len(Z)), len(Z[0])
	w := make([]float64, p)
	grad := make([]float64, p)
	b := 0.0
	for epoch := 0; epoch < logisticEpochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		gb := 0.0
		for i, z := range Z {
			diff := sigmoid(b+floats.Dot(w, z)) - y[i]
			floats.AddScaled(grad, diff, z)
			gb += diff
		}
		for j := range w {
			w[j] -= logisticRate * (grad[j]/n + logisticL2*w[j])
		}
		b -= logisticRate * gb / n
	}
	return Linear{Weights: w, Bias: b, Scaler: sc}, nil
}

// fitRidge resuelve (ZᵀZ + λI) w = Zᵀ(y - ȳ) sobre Z estandarizada.
func fitRidge(X [][]float64, y []float64) (Linear, error) {
	if len(X) == 0 {
		return Linear{}, errNoRows
	}
	sc := fitScaler(X)
	n, p := len(X), len(X[0])

	Z := mat.NewDense(n, p, nil)
	for i, x := range X {
		Z.SetRow(i, sc.apply(x))
	}
	ybar := stat.Mean(y, nil)
	yc := mat.NewVecDense(n, nil)
	for i, v := range y {
		yc.SetVec(i, v-ybar)
	}

	var gram mat.Dense
	gram.Mul(Z.T(), Z)
	for j := 0; j < p; j++ {
		gram.Set(j, j, gram.At(j, j)+ridgeLambda)
	}
	var rhs mat.VecDense
	rhs.MulVec(Z.T(), yc)

	var w mat.VecDense
	if err := w.SolveVec(&gram, &rhs); err != nil {
		return Linear{}, fmt.Errorf("solve ridge: %w", err)
	}
	return Linear{Weights: append([]float64(nil), w.RawVector().Data...), Bias: ybar, Scaler: sc}, nil
}

// importance agrega |w| por factor y normaliza a suma 1.
func importance(m Linear, cols []Column) map[string]float64 {
	out := map[string]float64{}
	total := 0.0
	for j, c := range cols {
		v := math.Abs(m.Weights[j])
		out[c.Factor] += v
		total += v
	}
	for k, v := range out {
		if total > 0 {
			out[k] = round(v/total, 4)
		} else {
			out[k] = 0
		}
	}
	return out
}

// split baraja con semilla fija y separa ceil(frac*n) filas de prueba.
func split(n int, frac float64, seed uint64) (train, test []int) {
	perm := rand.New(rand.NewPCG(seed, seed)).Perm(n)
	nTest := int(math.Ceil(frac * float64(n)))
	if nTest < 1 {
		nTest = 1
	}
	if nTest >= n {
		nTest = n - 1
	}
	return perm[nTest:], perm[:nTest]
}

func pick[T any](items []T, idx []int) []T {
	out := make([]T, 0, len(idx))
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}

// accuracy en porcentaje con umbral 0.5.
func accuracy(m Linear, X [][]float64, y []float64) (float64, error) {
	if len(X) == 0 {
		return 0, errNoRows
	}
	hits := 0
	for i, x := range X {
		p, err := m.Probability(x)
		if err != nil {
			return 0, err
		}
		if (p >= 0.5) == (y[i] >= 0.5) {
			hits++
		}
	}
	return float64(hits) / float64(len(X)) * 100, nil
}

// r2 es el coeficiente de determinación; con y constante devuelve 1 si el ajuste es exacto, si no 0.
func r2(m Linear, X [][]float64, y []float64) (float64, error) {
	if len(X) == 0 {
		return 0, errNoRows
	}
	mean := stat.Mean(y, nil)
	var ssRes, ssTot float64
	for i, x := range X {
		pred, err := m.Predict(x)
		if err != nil {
			return 0, err
		}
		ssRes += (y[i] - pred) * (y[i] - pred)
		ssTot += (y[i] - mean) * (y[i] - mean)
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1, nil
		}
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

package scoring

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"creditnext/internal/models"
)

// DefaultMonotoneConstraints fixes the direction of each feature on default risk:
// expense ratio raises it, everything else lowers it.
var DefaultMonotoneConstraints = [models.NumFeatures]int{+1, -1, -1, -1, -1}

// BoosterConfig holds gradient boosting hyperparameters
type BoosterConfig struct {
	Trees          int
	MaxDepth       int
	LearningRate   float64
	Subsample      float64
	ColSample      float64
	Lambda         float64
	MinChildWeight float64
	Gamma          float64
	Monotone       [models.NumFeatures]int
}

// DefaultBoosterConfig returns the production booster settings
func DefaultBoosterConfig() BoosterConfig {
	return BoosterConfig{
		Trees:          260,
		MaxDepth:       4,
		LearningRate:   0.06,
		Subsample:      0.9,
		ColSample:      0.9,
		Lambda:         1,
		MinChildWeight: 1,
		Gamma:          0,
		Monotone:       DefaultMonotoneConstraints,
	}
}

// Validate checks the hyperparameters are usable
func (c BoosterConfig) Validate() error {
	switch {
	case c.Trees <= 0:
		return fmt.Errorf("%w: trees must be positive", ErrInvalidBoosterConfig)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive", ErrInvalidBoosterConfig)
	case c.LearningRate <= 0:
		return fmt.Errorf("%w: learning rate must be positive", ErrInvalidBoosterConfig)
	case c.Subsample <= 0 || c.Subsample > 1:
		return fmt.Errorf("%w: subsample must be in (0, 1]", ErrInvalidBoosterConfig)
	case c.ColSample <= 0 || c.ColSample > 1:
		return fmt.Errorf("%w: column sample must be in (0, 1]", ErrInvalidBoosterConfig)
	case c.Lambda < 0 || c.MinChildWeight < 0 || c.Gamma < 0:
		return fmt.Errorf("%w: regularization terms must not be negative", ErrInvalidBoosterConfig)
	}
	for j, m := range c.Monotone {
		if m < -1 || m > 1 {
			return fmt.Errorf("%w: monotone constraint for %s must be -1, 0 or 1", ErrInvalidBoosterConfig, models.FeatureNames[j])
		}
	}
	return nil
}

// GradientBoostingTrainer fits monotone-constrained boosted trees on logistic loss
type GradientBoostingTrainer struct {
	Config   BoosterConfig
	Seed     int64
	Progress func(done, total int)
}

func (t GradientBoostingTrainer) Name() string {
	return "gradient_boosting"
}

type treeNode struct {
	feature   int
	threshold float64
	left      int
	right     int
	value     float64
}

type regressionTree struct {
	nodes []treeNode
}

func (t *regressionTree) predict(x Row) float64 {
	i := 0
	for {
		n := &t.nodes[i]
		if n.feature < 0 {
			return n.value
		}
		if x[n.feature] < n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}

// GradientBoosting is a fitted tree ensemble
type GradientBoosting struct {
	baseMargin float64
	trees      []regressionTree
}

func (g *GradientBoosting) Name() string {
	return "gradient_boosting"
}

func (g *GradientBoosting) Margin(x Row) float64 {
	m := g.baseMargin
	for i := range g.trees {
		m += g.trees[i].predict(x)
	}
	return m
}

func (g *GradientBoosting) PredictProba(x Row) float64 {
	return sigmoid(g.Margin(x))
}

// Trees returns the number of boosted trees
func (g *GradientBoosting) Trees() int {
	return len(g.trees)
}

func (t GradientBoostingTrainer) Fit(X []Row, y []float64) (Classifier, error) {
	cfg := t.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rate, err := validateTrainingSet(X, y)
	if err != nil {
		return nil, err
	}
	rate = math.Min(math.Max(rate, 1e-6), 1-1e-6)

	n := len(X)
	model := &GradientBoosting{
		baseMargin: logit(rate),
		trees:      make([]regressionTree, 0, cfg.Trees),
	}

	margins := make([]float64, n)
	for i := range margins {
		margins[i] = model.baseMargin
	}

	b := &treeBuilder{
		cfg:    cfg,
		X:      X,
		sorted: presortColumns(X),
		grad:   make([]float64, n),
		hess:   make([]float64, n),
		nodeOf: make([]int, n),
	}
	rng := rand.New(rand.NewSource(t.Seed))

	for round := 0; round < cfg.Trees; round++ {
		for i := range X {
			p := sigmoid(margins[i])
			b.grad[i] = p - y[i]
			b.hess[i] = math.Max(p*(1-p), 1e-16)
		}

		for i := range b.nodeOf {
			b.nodeOf[i] = 0
			if cfg.Subsample < 1 && rng.Float64() >= cfg.Subsample {
				b.nodeOf[i] = -1
			}
		}
		columns := sampleColumns(rng, cfg.ColSample)

		tree := b.grow(columns)
		for i := range X {
			margins[i] += tree.predict(X[i])
		}
		model.trees = append(model.trees, tree)

		if t.Progress != nil {
			t.Progress(round+1, cfg.Trees)
		}
	}

	return model, nil
}

func presortColumns(X []Row) [models.NumFeatures][]int {
	var sorted [models.NumFeatures][]int
	for f := range sorted {
		idx := make([]int, len(X))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return X[idx[a]][f] < X[idx[b]][f]
		})
		sorted[f] = idx
	}
	return sorted
}

// sampleColumns picks max(1, floor(fraction*NumFeatures)) features, returned in ascending order
func sampleColumns(rng *rand.Rand, fraction float64) []int {
	k := int(math.Floor(fraction * models.NumFeatures))
	if k < 1 {
		k = 1
	}
	if k >= models.NumFeatures {
		cols := make([]int, models.NumFeatures)
		for i := range cols {
			cols[i] = i
		}
		return cols
	}
	cols := rng.Perm(models.NumFeatures)[:k]
	sort.Ints(cols)
	return cols
}

type treeBuilder struct {
	cfg    BoosterConfig
	X      []Row
	sorted [models.NumFeatures][]int
	grad   []float64
	hess   []float64
	// nodeOf holds the tree node each row currently sits in, -1 when left out of the round
	nodeOf []int
}

type growingNode struct {
	id           int
	lower, upper float64
	G, H         float64
}

type splitCandidate struct {
	valid     bool
	feature   int
	threshold float64
	gain      float64
	GL, HL    float64
	wl, wr    float64
}

func (b *treeBuilder) leafWeight(G, H, lower, upper float64) float64 {
	denom := H + b.cfg.Lambda
	if denom <= 0 {
		return 0
	}
	w := -G / denom
	return math.Min(math.Max(w, lower), upper)
}

func (b *treeBuilder) gainGivenWeight(G, H, w float64) float64 {
	return -(2*G*w + (H+b.cfg.Lambda)*w*w)
}

func (b *treeBuilder) grow(columns []int) regressionTree {
	var G, H float64
	for i, node := range b.nodeOf {
		if node == 0 {
			G += b.grad[i]
			H += b.hess[i]
		}
	}

	nodes := []treeNode{{feature: -1}}
	frontier := []growingNode{{id: 0, lower: math.Inf(-1), upper: math.Inf(1), G: G, H: H}}

	for depth := 0; depth < b.cfg.MaxDepth && len(frontier) > 0; depth++ {
		best := b.findSplits(frontier, columns, len(nodes))

		slot := make(map[int]int, len(frontier))
		var next []growingNode
		for s, gn := range frontier {
			split := best[s]
			if !split.valid {
				nodes[gn.id].value = b.leafWeight(gn.G, gn.H, gn.lower, gn.upper) * b.cfg.LearningRate
				continue
			}

			left, right := len(nodes), len(nodes)+1
			nodes = append(nodes, treeNode{feature: -1}, treeNode{feature: -1})
			nodes[gn.id].feature = split.feature
			nodes[gn.id].threshold = split.threshold
			nodes[gn.id].left = left
			nodes[gn.id].right = right
			slot[gn.id] = s

			leftNode := growingNode{id: left, lower: gn.lower, upper: gn.upper, G: split.GL, H: split.HL}
			rightNode := growingNode{id: right, lower: gn.lower, upper: gn.upper, G: gn.G - split.GL, H: gn.H - split.HL}
			mid := (split.wl + split.wr) / 2
			switch b.cfg.Monotone[split.feature] {
			case 1:
				leftNode.upper = mid
				rightNode.lower = mid
			case -1:
				leftNode.lower = mid
				rightNode.upper = mid
			}
			next = append(next, leftNode, rightNode)
		}

		for i, node := range b.nodeOf {
			if node < 0 {
				continue
			}
			if _, ok := slot[node]; !ok {
				continue
			}
			parent := &nodes[node]
			if b.X[i][parent.feature] < parent.threshold {
				b.nodeOf[i] = parent.left
			} else {
				b.nodeOf[i] = parent.right
			}
		}

		frontier = next
	}

	for _, gn := range frontier {
		nodes[gn.id].value = b.leafWeight(gn.G, gn.H, gn.lower, gn.upper) * b.cfg.LearningRate
	}

	return regressionTree{nodes: nodes}
}

// findSplits scans every sampled column once and evaluates all frontier nodes together
func (b *treeBuilder) findSplits(frontier []growingNode, columns []int, nodeCount int) []splitCandidate {
	slot := make([]int, nodeCount)
	for i := range slot {
		slot[i] = -1
	}
	for s, gn := range frontier {
		slot[gn.id] = s
	}

	best := make([]splitCandidate, len(frontier))
	parentWeight := make([]float64, len(frontier))
	parentGain := make([]float64, len(frontier))
	for s, gn := range frontier {
		parentWeight[s] = b.leafWeight(gn.G, gn.H, gn.lower, gn.upper)
		parentGain[s] = b.gainGivenWeight(gn.G, gn.H, parentWeight[s])
	}

	GL := make([]float64, len(frontier))
	HL := make([]float64, len(frontier))
	last := make([]float64, len(frontier))
	seen := make([]bool, len(frontier))

	for _, f := range columns {
		for s := range frontier {
			GL[s], HL[s], seen[s] = 0, 0, false
		}

		for _, i := range b.sorted[f] {
			node := b.nodeOf[i]
			if node < 0 {
				continue
			}
			s := slot[node]
			if s < 0 {
				continue
			}

			v := b.X[i][f]
			if seen[s] && v != last[s] {
				b.evaluateSplit(&best[s], frontier[s], f, last[s], v, GL[s], HL[s], parentGain[s])
			}
			GL[s] += b.grad[i]
			HL[s] += b.hess[i]
			last[s] = v
			seen[s] = true
		}
	}

	return best
}

func (b *treeBuilder) evaluateSplit(best *splitCandidate, gn growingNode, f int, lo, hi, GL, HL, parentGain float64) {
	GR, HR := gn.G-GL, gn.H-HL
	if HL < b.cfg.MinChildWeight || HR < b.cfg.MinChildWeight {
		return
	}

	wl := b.leafWeight(GL, HL, gn.lower, gn.upper)
	wr := b.leafWeight(GR, HR, gn.lower, gn.upper)
	switch b.cfg.Monotone[f] {
	case 1:
		if wl > wr {
			return
		}
	case -1:
		if wl < wr {
			return
		}
	}

	gain := b.gainGivenWeight(GL, HL, wl) + b.gainGivenWeight(GR, HR, wr) - parentGain
	if gain <= b.cfg.Gamma || gain <= 0 {
		return
	}
	if best.valid && gain <= best.gain {
		return
	}

	threshold := lo + (hi-lo)/2
	if !(threshold > lo) {
		threshold = hi
	}

	*best = splitCandidate{
		valid:     true,
		feature:   f,
		threshold: threshold,
		gain:      gain,
		GL:        GL,
		HL:        HL,
		wl:        wl,
		wr:        wr,
	}
}

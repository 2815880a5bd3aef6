package socratic

// #region imports
import (
	"math/rand"
)

// #endregion

// #region pools

// Bloom's-taxonomy-derived prompts, one per level.
var bloomPrompts = []string{
	"What key terms or facts are relevant here?",
	"Can you restate the idea in your own words?",
	"Where could you apply this concept to a new example?",
	"What are the underlying assumptions or parts at play?",
	"How would you critique or compare the alternatives?",
	"What novel approach or analogy could you propose?",
}

// Open-ended follow-up templates.
var openTemplates = []string{
	"What information do you already have, and what is missing?",
	"If you had to explain this to a younger student, how would you phrase it?",
	"What would change if we altered one key variable in the problem?",
	"Which misconception is most likely here, and how would you rule it out?",
	"How does this connect to a topic you studied last week?",
}

// Pool returns a copy of the full follow-up question pool.
func Pool() []string {
	pool := make([]string, 0, len(bloomPrompts)+len(openTemplates))
	pool = append(pool, bloomPrompts...)
	pool = append(pool, openTemplates...)
	return pool
}

// #endregion pools

// #region questions

// Resample bound. The pool holds 11 distinct strings, so a duplicate draw
// surviving this many rounds is not possible in practice; the guard keeps
// the loop provably finite.
const maxDraws = 16

// Questions draws two distinct follow-up questions from the pool. The same
// seed always yields the same pair in the same order.
func Questions(seed int64) (string, string) {
	rnd := rand.New(rand.NewSource(seed))
	pool := Pool()

	q1 := pool[rnd.Intn(len(pool))]
	q2 := q1
	for i := 0; i < maxDraws && q2 == q1; i++ {
		q2 = pool[rnd.Intn(len(pool))]
	}
	if q2 == q1 {
		for _, q := range pool {
			if q != q1 {
				q2 = q
				break
			}
		}
	}
	return q1, q2
}

// #endregion questions

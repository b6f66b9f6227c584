// Package arrowmaze solves arrow-grid puzzles by turning them into graphs.
//
// What is an arrow maze?
//
//	A rectangular board where every cell but one holds an arrow. Each arrow
//	is Red or Blue, points in one of 8 compass directions and is either
//	plain or a circle. The last cell is the target. A token starts on the
//	top-left arrow and hops to any differently-colored cell along the
//	arrow's ray. Circles flip the travel direction of every later hop.
//
// How it is solved:
//
//   - maze/      - grid model, dual-orientation hop graph, Solver
//   - core/      - arena graph: dense int vertices, flat edge slice
//   - dijkstra/  - best-first search (Dijkstra, goal-directed AStar)
//   - bfs/       - breadth-first search with hooks, used for fewest hops
//   - mazeio/    - puzzle text parser and path writer
//   - config/    - YAML / .env / environment settings
//   - cmd/arrowmaze - the command-line front end
//
// Quick ASCII example (2×2, target bottom-right):
//
//	R/S   B/W
//	B/W*  X
//
//	(1 1) ─S→ (2 1)  circle: travel now reversed, W becomes E
//	(2 1) ─E→ (2 2)  lands on the target's backward node
//
// Run it:
//
//	go run ./cmd/arrowmaze < puzzle.txt
//	go run ./cmd/arrowmaze stats -i puzzle.txt
package arrowmaze

package catalog

// lessonTable is the fixed grade 11-12 course content: mathematics,
// physics and chemistry units keyed by lesson id.
var lessonTable = map[string]map[string]Lesson{
	"math": {
		"1.1": {
			Title: "Linear Functions",
			Body: "A linear function is a function whose graph is a straight line, " +
				"with the general form f(x) = mx + b where m is the slope and b the " +
				"y-intercept. The domain and range are all real numbers and the rate " +
				"of change is constant: the function increases when m > 0, decreases " +
				"when m < 0, and is constant when m = 0. Examples: f(x) = 2x + 3 " +
				"(slope 2, intercept 3), f(x) = -x + 5, and the constant f(x) = 4.",
		},
		"1.2": {
			Title: "Quadratic Functions",
			Body: "A quadratic function has the general form f(x) = ax² + bx + c " +
				"with a ≠ 0. Its graph is a parabola opening upward when a > 0 and " +
				"downward when a < 0, with vertex and axis of symmetry at x = -b/(2a). " +
				"Standard, vertex and factored forms describe the same curve, and the " +
				"roots follow from the quadratic formula " +
				"x = (-b ± √(b² - 4ac))/(2a).",
		},
		"1.3": {
			Title: "Exponential Functions",
			Body: "An exponential function has the form f(x) = a·bˣ with a > 0, " +
				"b > 0 and b ≠ 1. The domain is all real numbers, the range is " +
				"(0, ∞), and y = 0 is a horizontal asymptote. The function grows when " +
				"b > 1 and decays when 0 < b < 1. Common forms include the natural " +
				"exponential aeˣ, compound interest A = P(1 + r/n)^(nt) and " +
				"population growth P(t) = P₀e^(rt), with applications from " +
				"radioactive decay to bacterial growth.",
		},
		"1.4": {
			Title: "Logarithmic Functions",
			Body: "A logarithmic function f(x) = log_b(x) is the inverse of an " +
				"exponential, defined for b > 0, b ≠ 1 and x > 0. Its domain is " +
				"(0, ∞), its range all real numbers, with a vertical asymptote at " +
				"x = 0 and passing through (1, 0) and (b, 1). The logarithm laws cover " +
				"products, quotients and powers, and the change of base formula " +
				"log_b(x) = ln(x)/ln(b) relates the common log to the natural log.",
		},
	},
	"physics": {
		"1.1": {
			Title: "Motion in One Dimension",
			Body: "Motion in one dimension is movement along a straight line, " +
				"described by position, displacement, distance, speed, velocity and " +
				"acceleration. For constant acceleration the kinematic equations " +
				"v = v₀ + at, x = x₀ + v₀t + ½at² and " +
				"v² = v₀² + 2a(x - x₀) apply. Uniform motion has zero " +
				"acceleration, and free fall is motion under gravity with " +
				"a = g = 9.8 m/s².",
		},
		"1.2": {
			Title: "Motion in Two Dimensions",
			Body: "Motion in two dimensions happens in a plane and is described by " +
				"vector components for position, velocity and acceleration. Projectile " +
				"motion combines uniform horizontal motion x = v₀ₓt with " +
				"accelerated vertical motion y = v₀ᵧt - ½gt², giving " +
				"range R = (v₀²sin(2θ))/g and time of flight " +
				"T = (2v₀sin(θ))/g. Circular motion adds centripetal " +
				"acceleration a = v²/r, angular velocity ω = v/r and period " +
				"T = 2πr/v.",
		},
	},
	"chemistry": {
		"1.1": {
			Title: "Ionic Bonding",
			Body: "Ionic bonding occurs between metals and non-metals through " +
				"electron transfer: metals lose electrons to form cations, non-metals " +
				"gain them to form anions, and the opposite charges attract into a " +
				"crystal lattice. Ionic compounds such as NaCl, MgO and CaF₂ have " +
				"high melting points, conduct electricity when molten or dissolved, " +
				"and are brittle. Lattice energy, the energy to separate one mole of " +
				"solid into gaseous ions, measures bond strength.",
		},
		"1.2": {
			Title: "Covalent Bonding",
			Body: "Covalent bonding occurs between non-metals through electron " +
				"sharing, in single, double or triple bonds. Equal sharing gives " +
				"nonpolar bonds and unequal sharing polar bonds, with the " +
				"electronegativity difference deciding. Covalent compounds melt lower " +
				"than ionic ones, conduct poorly, and may be gas, liquid or solid at " +
				"room temperature. Lewis structures diagram the valence electrons, " +
				"with dots for electrons and lines for bonds.",
		},
	},
}

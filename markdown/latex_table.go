package markdown

// latexSymbols maps LaTeX command names to Unicode characters.
var latexSymbols = map[string]rune{
	// Greek, lower case
	"alpha":      'α',
	"beta":       'β',
	"gamma":      'γ',
	"delta":      'δ',
	"epsilon":    'ϵ',
	"varepsilon": 'ε',
	"zeta":       'ζ',
	"eta":        'η',
	"theta":      'θ',
	"vartheta":   'ϑ',
	"iota":       'ι',
	"kappa":      'κ',
	"lambda":     'λ',
	"mu":         'μ',
	"nu":         'ν',
	"xi":         'ξ',
	"pi":         'π',
	"varpi":      'ϖ',
	"rho":        'ρ',
	"varrho":     'ϱ',
	"sigma":      'σ',
	"varsigma":   'ς',
	"tau":        'τ',
	"upsilon":    'υ',
	"phi":        'ϕ',
	"varphi":     'φ',
	"chi":        'χ',
	"psi":        'ψ',
	"omega":      'ω',

	// Greek, upper case
	"Gamma":   'Γ',
	"Delta":   'Δ',
	"Theta":   'Θ',
	"Lambda":  'Λ',
	"Xi":      'Ξ',
	"Pi":      'Π',
	"Sigma":   'Σ',
	"Upsilon": 'Υ',
	"Phi":     'Φ',
	"Psi":     'Ψ',
	"Omega":   'Ω',

	// Relations
	"leq":      '≤',
	"le":       '≤',
	"geq":      '≥',
	"ge":       '≥',
	"neq":      '≠',
	"ne":       '≠',
	"approx":   '≈',
	"equiv":    '≡',
	"sim":      '∼',
	"simeq":    '≃',
	"cong":     '≅',
	"propto":   '∝',
	"ll":       '≪',
	"gg":       '≫',
	"subset":   '⊂',
	"supset":   '⊃',
	"subseteq": '⊆',
	"supseteq": '⊇',
	"in":       '∈',
	"notin":    '∉',
	"ni":       '∋',
	"perp":     '⊥',
	"parallel": '∥',
	"mid":      '∣',

	// Operators
	"times":    '×',
	"div":      '÷',
	"pm":       '±',
	"mp":       '∓',
	"cdot":     '·',
	"ast":      '∗',
	"star":     '⋆',
	"circ":     '∘',
	"bullet":   '∙',
	"oplus":    '⊕',
	"otimes":   '⊗',
	"cap":      '∩',
	"cup":      '∪',
	"wedge":    '∧',
	"land":     '∧',
	"vee":      '∨',
	"lor":      '∨',
	"neg":      '¬',
	"lnot":     '¬',
	"setminus": '∖',

	// Big operators and calculus
	"sum":     '∑',
	"prod":    '∏',
	"int":     '∫',
	"oint":    '∮',
	"partial": '∂',
	"nabla":   '∇',
	"sqrt":    '√',
	"infty":   '∞',

	// Logic and sets
	"forall":     '∀',
	"exists":     '∃',
	"emptyset":   '∅',
	"varnothing": '∅',
	"therefore":  '∴',
	"because":    '∵',

	// Arrows
	"to":             '→',
	"rightarrow":     '→',
	"leftarrow":      '←',
	"gets":           '←',
	"leftrightarrow": '↔',
	"Rightarrow":     '⇒',
	"Leftarrow":      '⇐',
	"Leftrightarrow": '⇔',
	"implies":        '⟹',
	"iff":            '⟺',
	"mapsto":         '↦',
	"uparrow":        '↑',
	"downarrow":      '↓',

	// Dots and misc
	"ldots":    '…',
	"cdots":    '⋯',
	"vdots":    '⋮',
	"ddots":    '⋱',
	"prime":    '′',
	"degree":   '°',
	"angle":    '∠',
	"triangle": '△',
	"hbar":     'ℏ',
	"ell":      'ℓ',
	"Re":       'ℜ',
	"Im":       'ℑ',
	"aleph":    'ℵ',
	"langle":   '⟨',
	"rangle":   '⟩',
	"lfloor":   '⌊',
	"rfloor":   '⌋',
	"lceil":    '⌈',
	"rceil":    '⌉',
}

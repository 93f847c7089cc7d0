// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

import "fmt"

// DNA is a standard DNA substitution model.
type DNA int

// Standard DNA models.
const (
	JC DNA = iota
	F81
	K80
	HKY
	TN
	TNe
	K81
	K81u
	TPM2
	TPM2u
	TPM3
	TPM3u
	TIM
	TIMe
	TIM2
	TIM2e
	TIM3
	TIM3e
	TVM
	TVMe
	SYM
	GTR
	StrSym
	Unrest
)

var dnaModels = [...]entry{
	JC:     {"JC", "JC", "Equal substitution rates and equal base frequencies (Jukes and Cantor, 1969)."},
	F81:    {"F81", "F81", "Equal rates but unequal base frequencies (Felsenstein, 1981)."},
	K80:    {"K80", "K80", "Unequal transition/transversion rates and equal base frequencies (Kimura, 1980)."},
	HKY:    {"HKY", "HKY", "Unequal transition/transversion rates and unequal base frequencies (Hasegawa, Kishino and Yano, 1985)."},
	TN:     {"TN", "TN", "Like HKY but unequal purine/pyrimidine rates (Tamura and Nei, 1993)."},
	TNe:    {"TNe", "TNe", "Like TN but equal base frequencies."},
	K81:    {"K81", "K81", "Three substitution types model and equal base frequencies (Kimura, 1981)."},
	K81u:   {"K81u", "K81u", "Like K81 but unequal base frequencies."},
	TPM2:   {"TPM2", "TPM2", "AC=AT, AG=CT, CG=GT and equal base frequencies."},
	TPM2u:  {"TPM2u", "TPM2u", "Like TPM2 but unequal base frequencies."},
	TPM3:   {"TPM3", "TPM3", "AC=CG, AG=CT, AT=GT and equal base frequencies."},
	TPM3u:  {"TPM3u", "TPM3u", "Like TPM3 but unequal base frequencies."},
	TIM:    {"TIM", "TIM", "Transition model, AC=GT, AT=CG and unequal base frequencies."},
	TIMe:   {"TIMe", "TIMe", "Like TIM but equal base frequencies."},
	TIM2:   {"TIM2", "TIM2", "AC=AT, CG=GT and unequal base frequencies."},
	TIM2e:  {"TIM2e", "TIM2e", "Like TIM2 but equal base frequencies."},
	TIM3:   {"TIM3", "TIM3", "AC=CG, AT=GT and unequal base frequencies."},
	TIM3e:  {"TIM3e", "TIM3e", "Like TIM3 but equal base frequencies."},
	TVM:    {"TVM", "TVM", "Transversion model, AG=CT and unequal base frequencies."},
	TVMe:   {"TVMe", "TVMe", "Like TVM but equal base frequencies."},
	SYM:    {"SYM", "SYM", "Symmetric model with unequal rates but equal base frequencies (Zharkikh, 1994)."},
	GTR:    {"GTR", "GTR", "General time reversible model with unequal rates and unequal base frequencies (Tavare, 1986)."},
	StrSym: {"StrSym", "STRSYM", "Strand-symmetric model with AC=TG, AG=TC, AT=TA, CA=GT, CG=GC, GA=CT (Yap and Speed, 2004)."},
	Unrest: {"Unrest", "UNREST", "Unrestricted model, non-reversible with twelve free rate parameters."},
}

// IQTree returns the string used by the engine for the model.
func (m DNA) IQTree() string {
	return m.entry().str
}

// Description returns a description of the model.
func (m DNA) Description() string {
	return m.entry().desc
}

// Name returns the symbolic name of the model.
func (m DNA) Name() string {
	return m.entry().name
}

// String implements the fmt.Stringer interface.
func (m DNA) String() string {
	return m.IQTree()
}

// Type returns the kind of data of the model.
func (m DNA) Type() Kind {
	return StandardDNA.Type()
}

func (m DNA) valid() bool {
	return m >= 0 && int(m) < len(dnaModels)
}

func (m DNA) entry() entry {
	if m < 0 || int(m) >= len(dnaModels) {
		panic(CatalogIntegrityError{msg: fmt.Sprintf("undefined DNA model %d", int(m))})
	}
	e := dnaModels[m]
	if e.str == "" || e.desc == "" {
		panic(CatalogIntegrityError{msg: fmt.Sprintf("incomplete entry for DNA model %d", int(m))})
	}
	return e
}

// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package model

import "fmt"

// AA is an amino acid substitution model.
type AA int

// Amino acid models.
const (
	Blosum62 AA = iota
	CpREV
	Dayhoff
	DCMut
	FLAVI
	FLU
	GTR20
	HIVb
	HIVw
	JTT
	JTTDCMut
	LG
	MtART
	MtMAM
	MtREV
	MtZOA
	MtMet
	MtVer
	MtInv
	NQBird
	NQInsect
	NQMammal
	NQPfam
	NQPlant
	NQYeast
	Poisson
	PMB
	QBird
	QInsect
	QMammal
	QPfam
	QPlant
	QYeast
	RtREV
	VT
	WAG
)

var aaModels = [...]entry{
	Blosum62: {"Blosum62", "Blosum62", "BLOcks SUbstitution Matrix (Henikoff and Henikoff, 1992)."},
	CpREV:    {"CpREV", "cpREV", "Chloroplast matrix (Adachi et al., 2000)."},
	Dayhoff:  {"Dayhoff", "Dayhoff", "General matrix (Dayhoff et al., 1978)."},
	DCMut:    {"DCMut", "DCMut", "Revised Dayhoff matrix (Kosiol and Goldman, 2005)."},
	FLAVI:    {"FLAVI", "FLAVI", "Flavivirus (Le and Vinh, 2020)."},
	FLU:      {"FLU", "FLU", "Influenza virus (Dang et al., 2010)."},
	GTR20:    {"GTR20", "GTR20", "General time reversible models with 190 rate parameters."},
	HIVb:     {"HIVb", "HIVb", "HIV between-patient matrix HIV-Bm (Nickle et al., 2007)."},
	HIVw:     {"HIVw", "HIVw", "HIV within-patient matrix HIV-Wm (Nickle et al., 2007)."},
	JTT:      {"JTT", "JTT", "General matrix (Jones et al., 1992)."},
	JTTDCMut: {"JTTDCMut", "JTTDCMut", "Revised JTT matrix (Kosiol and Goldman, 2005)."},
	LG:       {"LG", "LG", "General matrix (Le and Gascuel, 2008)."},
	MtART:    {"MtART", "mtART", "Mitochondrial Arthropoda (Abascal et al., 2007)."},
	MtMAM:    {"MtMAM", "mtMAM", "Mitochondrial Mammalia (Yang et al., 1998)."},
	MtREV:    {"MtREV", "mtREV", "Mitochondrial Vertebrate (Adachi and Hasegawa, 1996)."},
	MtZOA:    {"MtZOA", "mtZOA", "Mitochondrial Metazoa (Animals) (Rota-Stabelli et al., 2009)."},
	MtMet:    {"MtMet", "mtMet", "Mitochondrial Metazoa (Vinh et al., 2017)."},
	MtVer:    {"MtVer", "mtVer", "Mitochondrial Vertebrate (Vinh et al., 2017)."},
	MtInv:    {"MtInv", "mtInv", "Mitochondrial Invertebrate (Vinh et al., 2017)."},
	NQBird:   {"NQBird", "NQ.bird", "Non-reversible Q matrix (Dang et al., 2022) estimated for birds."},
	NQInsect: {"NQInsect", "NQ.insect", "Non-reversible Q matrix (Dang et al., 2022) estimated for insects."},
	NQMammal: {"NQMammal", "NQ.mammal", "Non-reversible Q matrix (Dang et al., 2022) estimated for mammals."},
	NQPfam:   {"NQPfam", "NQ.pfam", "Non-reversible Q matrix (Dang et al., 2022) estimated for the Pfam database."},
	NQPlant:  {"NQPlant", "NQ.plant", "Non-reversible Q matrix (Dang et al., 2022) estimated for plants."},
	NQYeast:  {"NQYeast", "NQ.yeast", "Non-reversible Q matrix (Dang et al., 2022) estimated for yeasts."},
	Poisson:  {"Poisson", "Poisson", "Equal amino acid exchange rates and frequencies."},
	PMB:      {"PMB", "PMB", "Probability Matrix from Blocks, revised BLOSUM matrix (Veerassamy et al., 2004)."},
	QBird:    {"QBird", "Q.bird", "Q matrix (Minh et al., 2021) estimated for birds."},
	QInsect:  {"QInsect", "Q.insect", "Q matrix (Minh et al., 2021) estimated for insects."},
	QMammal:  {"QMammal", "Q.mammal", "Q matrix (Minh et al., 2021) estimated for mammals."},
	QPfam:    {"QPfam", "Q.pfam", "Q matrix (Minh et al., 2021) estimated for the Pfam database."},
	QPlant:   {"QPlant", "Q.plant", "Q matrix (Minh et al., 2021) estimated for plants."},
	QYeast:   {"QYeast", "Q.yeast", "Q matrix (Minh et al., 2021) estimated for yeasts."},
	RtREV:    {"RtREV", "rtREV", "Retrovirus (Dimmic et al., 2002)."},
	VT:       {"VT", "VT", "General 'Variable Time' matrix (Mueller and Vingron, 2000)."},
	WAG:      {"WAG", "WAG", "General matrix (Whelan and Goldman, 2001)."},
}

// IQTree returns the string used by the engine for the model.
func (m AA) IQTree() string {
	return m.entry().str
}

// Description returns a description of the model.
func (m AA) Description() string {
	return m.entry().desc
}

// Name returns the symbolic name of the model.
func (m AA) Name() string {
	return m.entry().name
}

// String implements the fmt.Stringer interface.
func (m AA) String() string {
	return m.IQTree()
}

// Type returns the kind of data of the model.
func (m AA) Type() Kind {
	return AminoAcid.Type()
}

func (m AA) valid() bool {
	return m >= 0 && int(m) < len(aaModels)
}

func (m AA) entry() entry {
	if m < 0 || int(m) >= len(aaModels) {
		panic(CatalogIntegrityError{msg: fmt.Sprintf("undefined amino acid model %d", int(m))})
	}
	e := aaModels[m]
	if e.str == "" || e.desc == "" {
		panic(CatalogIntegrityError{msg: fmt.Sprintf("incomplete entry for amino acid model %d", int(m))})
	}
	return e
}

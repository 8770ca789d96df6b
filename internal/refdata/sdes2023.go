package refdata

// Sector names as they appear in balances, stores and exports.
const (
	SectorResidential = "residential"
	SectorTertiary    = "tertiary"
	SectorIndustry    = "industry"
	SectorTransport   = "transport"
	SectorAgriculture = "agriculture"
	SectorNonEnergy   = "non_energy"
)

// SDES2023 returns the canonical 2023 baseline: French final energy
// consumption by sector, end-use and vector, reconciled against the SDES
// bilan énergétique tables (1615 TWh total, 392 TWh electricity).
//
// Each call builds a fresh value, so concurrent scenario runs can hold
// independent instances. End-use splits are rounded to the published
// sector totals; see the SDES tables for provenance.
func SDES2023() ReferenceData {
	residential := SectorReference{
		Name: SectorResidential,
		Usages: []UsageReference{
			//        name                total  elec  gaz  petrole charbon enr reseau
			mustUsage("chauffage", 312, 50, 94, 31, 0, 125, 12),
			mustUsage("ecs", 45, 25, 15, 3, 0, 2, 0),
			mustUsage("cuisson", 25, 12, 12, 1, 0, 0, 0),
			mustUsage("electricite_specifique", 35, 35, 0, 0, 0, 0, 0),
			mustUsage("eclairage", 5, 5, 0, 0, 0, 0, 0),
		},
	}

	tertiary := SectorReference{
		Name: SectorTertiary,
		Usages: []UsageReference{
			mustUsage("chauffage", 100, 15, 59, 15, 0, 5, 6),
			mustUsage("climatisation", 10, 10, 0, 0, 0, 0, 0),
			mustUsage("eclairage", 25, 25, 0, 0, 0, 0, 0),
			mustUsage("electricite_specifique", 50, 50, 0, 0, 0, 0, 0),
			mustUsage("ecs", 20, 8, 10, 2, 0, 0, 0),
			mustUsage("autres", 24, 10, 9, 5, 0, 0, 0),
		},
	}

	industry := SectorReference{
		Name: SectorIndustry,
		Usages: []UsageReference{
			// Heat split by temperature level: >400°C (steel, cement,
			// glass), 100-400°C (chemicals, food), <100°C (drying).
			mustUsage("chaleur_haute_temp", 90, 5, 47, 15, 15, 8, 0),
			mustUsage("chaleur_moyenne_temp", 45, 5, 32, 6, 0, 2, 0),
			mustUsage("chaleur_basse_temp", 25, 5, 15, 3, 0, 2, 0),
			mustUsage("force_motrice", 70, 70, 0, 0, 0, 0, 0),
			mustUsage("electrochimie", 15, 15, 0, 0, 0, 0, 0),
			mustUsage("autres", 38, 20, 13, 5, 0, 0, 0),
		},
	}

	transport := SectorReference{
		Name: SectorTransport,
		Usages: []UsageReference{
			mustUsage("voitures", 215, 2, 0, 206, 0, 7, 0),
			mustUsage("deux_roues", 10, 0, 0, 10, 0, 0, 0),
			mustUsage("bus_cars", 15, 0, 3, 12, 0, 0, 0),
			mustUsage("poids_lourds", 150, 0, 0, 146, 0, 4, 0),
			mustUsage("vul", 35, 0, 0, 35, 0, 0, 0),
			mustUsage("rail", 15, 12, 0, 3, 0, 0, 0),
			mustUsage("aviation_domestique", 8, 0, 0, 8, 0, 0, 0),
			mustUsage("aviation_internationale", 55, 0, 0, 55, 0, 0, 0),
			mustUsage("maritime", 7, 0, 0, 7, 0, 0, 0),
			mustUsage("fluvial", 3, 0, 0, 3, 0, 0, 0),
		},
	}

	agriculture := SectorReference{
		Name: SectorAgriculture,
		Usages: []UsageReference{
			mustUsage("machinisme", 30, 0, 0, 30, 0, 0, 0),
			mustUsage("serres", 10, 2, 6, 0, 0, 2, 0),
			mustUsage("irrigation", 3, 3, 0, 0, 0, 0, 0),
			mustUsage("elevage", 5, 5, 0, 0, 0, 0, 0),
			mustUsage("autres", 7, 2, 0, 3, 0, 2, 0),
		},
	}

	nonEnergy := SectorReference{
		Name: SectorNonEnergy,
		Usages: []UsageReference{
			// Feedstocks, not combustion: naphtha for plastics, natural
			// gas for ammonia, bitumen for roads.
			mustUsage("petrochimie", 60, 0, 0, 60, 0, 0, 0),
			mustUsage("engrais", 30, 0, 30, 0, 0, 0, 0),
			mustUsage("autres_chimie", 15, 0, 8, 5, 2, 0, 0),
			mustUsage("bitumes", 8, 0, 0, 8, 0, 0, 0),
		},
	}

	r, err := New(residential, tertiary, industry, transport, agriculture, nonEnergy)
	if err != nil {
		panic(err) // the hard-coded dataset must always validate
	}
	return r
}

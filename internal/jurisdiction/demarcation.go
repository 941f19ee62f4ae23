package jurisdiction

// demarcation is the reconciled area-demarcation table: zone → ACP division →
// police stations. Kept as data so the directory stays the only lookup path.
var demarcation = map[string]map[string][]string{
	"Zone-1": {
		"ACP Pimpri":  {"Pimpri PS", "Chinchwad PS", "Nigdi PS"},
		"ACP Sangawi": {"Sant Tukaram Nagar PS", "Dapodi PS", "Sangawi PS"},
	},
	"Zone-2": {
		"ACP Wakad":     {"Wakad PS", "Kalewadi PS", "Ravet PS"},
		"ACP Hinjewadi": {"Hinjewadi PS", "Bavdhan PS"},
	},
	"Zone-3": {
		"ACP Bhosari MIDC": {"Bhosari MIDC PS", "Dighi PS", "Bhosari PS"},
		"ACP Chakan":       {"Chakan South PS", "Chakan North PS", "Alandi PS"},
	},
	"Zone-4": {
		"ACP Dehu Road":     {"Dehu Road PS", "Shirgaon PS", "Chikhali PS"},
		"ACP Mhalunge MIDC": {"Mhalunge North PS", "Mhalunge South PS"},
	},
}

// NewDemarcatedDirectory returns a directory pre-loaded with the commissioned
// demarcation table.
func NewDemarcatedDirectory() *Directory {
	d := NewDirectory()
	for zone, divisions := range demarcation {
		for division, stations := range divisions {
			for _, station := range stations {
				d.Register(station, division, zone)
			}
		}
	}
	return d
}

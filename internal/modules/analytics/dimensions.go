package analytics

import "github.com/shortspace/core/internal/models"

// The dimension aggregators reduce a flat visit set to per-category
// breakdowns. Every count is the size of a distinct-IP set within the
// matched subset; uniqueClicks and uniqueUsers are the same figure.
// Categories are emitted in first-observation order.

type ipSet map[string]struct{}

func (s ipSet) add(ip string) { s[ip] = struct{}{} }

// aggregateOS groups visits by operating system and, inside each OS, by
// browser name + version. Visits without an OS are skipped.
func aggregateOS(visits []models.VisitModel) []OSStat {
	type osAcc struct {
		ips      ipSet
		browsers map[string]ipSet
		order    []string
	}

	accs := map[string]*osAcc{}
	var order []string

	for _, v := range visits {
		if v.OS == "" {
			continue
		}
		acc, ok := accs[v.OS]
		if !ok {
			acc = &osAcc{ips: ipSet{}, browsers: map[string]ipSet{}}
			accs[v.OS] = acc
			order = append(order, v.OS)
		}
		acc.ips.add(v.IPAddress)

		browser := v.Browser
		if v.BrowserVersion != "" {
			browser += " " + v.BrowserVersion
		}
		set, ok := acc.browsers[browser]
		if !ok {
			set = ipSet{}
			acc.browsers[browser] = set
			acc.order = append(acc.order, browser)
		}
		set.add(v.IPAddress)
	}

	stats := make([]OSStat, 0, len(order))
	for _, name := range order {
		acc := accs[name]
		browsers := make([]BrowserStat, 0, len(acc.order))
		for _, b := range acc.order {
			browsers = append(browsers, BrowserStat{Browser: b, Users: len(acc.browsers[b])})
		}
		stats = append(stats, OSStat{
			OSName:       name,
			UniqueClicks: len(acc.ips),
			UniqueUsers:  len(acc.ips),
			Browsers:     browsers,
		})
	}
	return stats
}

// aggregateDevice groups visits by device class and, inside each class, by
// device model. Visits without a device class are skipped entirely; visits
// without a model still count toward the class but not the model list.
func aggregateDevice(visits []models.VisitModel) []DeviceStat {
	type devAcc struct {
		ips    ipSet
		models map[string]ipSet
		order  []string
	}

	accs := map[string]*devAcc{}
	var order []string

	for _, v := range visits {
		if v.Device == "" {
			continue
		}
		acc, ok := accs[v.Device]
		if !ok {
			acc = &devAcc{ips: ipSet{}, models: map[string]ipSet{}}
			accs[v.Device] = acc
			order = append(order, v.Device)
		}
		acc.ips.add(v.IPAddress)

		if v.DeviceModel == "" {
			continue
		}
		set, ok := acc.models[v.DeviceModel]
		if !ok {
			set = ipSet{}
			acc.models[v.DeviceModel] = set
			acc.order = append(acc.order, v.DeviceModel)
		}
		set.add(v.IPAddress)
	}

	stats := make([]DeviceStat, 0, len(order))
	for _, name := range order {
		acc := accs[name]
		modelStats := make([]ModelStat, 0, len(acc.order))
		for _, m := range acc.order {
			modelStats = append(modelStats, ModelStat{Model: m, Users: len(acc.models[m])})
		}
		stats = append(stats, DeviceStat{
			DeviceName:   name,
			UniqueClicks: len(acc.ips),
			UniqueUsers:  len(acc.ips),
			Models:       modelStats,
		})
	}
	return stats
}

// distinctIPs counts unique visitor IPs across the whole set.
func distinctIPs(visits []models.VisitModel) int {
	ips := ipSet{}
	for _, v := range visits {
		ips.add(v.IPAddress)
	}
	return len(ips)
}

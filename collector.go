/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package pool

import (
	"github.com/prometheus/client_golang/prometheus"
)

var idleObjectsDesc = prometheus.NewDesc(
	"message_pool_idle_objects",
	"Amount of idle objects in the message pool.",
	[]string{"message_type"},
	nil,
)

type depthCollector struct {
	registry *Registry
}

// NewDepthCollector exports depths of all pools bound in the registry as message_pool_idle_objects gauge
// depths are read with no lock: bind pools created by NewSyncPool() only or gather from the goroutine that owns the pools
func NewDepthCollector(r *Registry) prometheus.Collector {
	return &depthCollector{registry: r}
}

func (c *depthCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- idleObjectsDesc
}

func (c *depthCollector) Collect(ch chan<- prometheus.Metric) {
	for _, msgType := range c.registry.boundTypes() {
		depth, ok := c.registry.DepthOf(msgType)
		if !ok {
			continue
		}
		ch <- prometheus.MustNewConstMetric(idleObjectsDesc, prometheus.GaugeValue, float64(depth), msgType.String())
	}
}

// Package ikcio writes an ikc.Result's clustering to TSV or CSV, the two
// external serialization forms the core clustering types are specified
// against without depending on either encoding themselves.
package ikcio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vikramr2/ikcore/ikc"
)

// membership is one (node_id, cluster_id) row, carrying along the cluster's
// k_value and modularity so both writers can be built from the same sorted
// slice.
type membership struct {
	nodeID     uint64
	clusterID  int
	kValue     int
	modularity float64
}

// memberships flattens clusters into rows, numbering cluster_id from 1 in
// emission order (clusters[0] is cluster_id 1).
func memberships(clusters []ikc.Cluster) []membership {
	rows := make([]membership, 0)
	for ci, c := range clusters {
		for _, n := range c.Nodes {
			rows = append(rows, membership{nodeID: n, clusterID: ci + 1, kValue: c.KValue, modularity: c.Modularity})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].clusterID != rows[j].clusterID {
			return rows[i].clusterID < rows[j].clusterID
		}

		return rows[i].nodeID < rows[j].nodeID
	})

	return rows
}

// TSVWriter writes a clustering as one tab-separated (node_id, cluster_id)
// pair per line, no header, sorted by (cluster_id ascending, node_id
// ascending).
type TSVWriter struct{}

// Write implements the TSV output form.
func (TSVWriter) Write(clusters []ikc.Cluster, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, m := range memberships(clusters) {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", m.nodeID, m.clusterID); err != nil {
			return fmt.Errorf("ikcio: writing tsv row: %w", err)
		}
	}

	return bw.Flush()
}

// CSVWriter writes a clustering with header "node_id,cluster_id,k_value,
// modularity", one data row per membership, sorted the same way TSVWriter
// sorts.
type CSVWriter struct{}

// Write implements the CSV output form. modularity is formatted with
// strconv's shortest round-trippable representation ('g', -1 precision).
func (CSVWriter) Write(clusters []ikc.Cluster, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"node_id", "cluster_id", "k_value", "modularity"}); err != nil {
		return fmt.Errorf("ikcio: writing csv header: %w", err)
	}

	for _, m := range memberships(clusters) {
		row := []string{
			strconv.FormatUint(m.nodeID, 10),
			strconv.Itoa(m.clusterID),
			strconv.Itoa(m.kValue),
			strconv.FormatFloat(m.modularity, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("ikcio: writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

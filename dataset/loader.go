package dataset

import (
	"bufio"
	"database/sql"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ulikunitz/xz"
	"go-ml.dev/pkg/linear/fu"
	"go-ml.dev/pkg/linear/model"
	"go-ml.dev/pkg/zorros"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"
)

const DefaultTestSize = 0.1

// NoTest as Loader.TestSize keeps every row in the training split
const NoTest = -1.0

/*
Loader builds datasets from tabular sources
*/
type Loader struct {
	Shuffle  bool         // permute rows once before splitting
	Seed     int64        // shuffle seed, time based if zero
	TestSize float64      // held-out fraction, DefaultTestSize if zero, none if NoTest
	Verbose  model.Logger // diagnostic output
}

/*
Load reads the delimited file with the default Loader
*/
func Load(source string, shuffle bool) (*Dataset, error) {
	return Loader{Shuffle: shuffle}.Load(source)
}

/*
LuckyLoad loads the dataset and panics on error
*/
func LuckyLoad(source string, shuffle bool) *Dataset {
	ds, err := Load(source, shuffle)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return ds
}

/*
Load reads the delimited file, xz compressed if it has the .xz extension
*/
func (l Loader) Load(source string) (*Dataset, error) {
	path := fu.DatasetPath(source)
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("received invalid file %v: %w", source, ErrInvalidInput)
	}
	defer f.Close()
	model.LoggerOr(l.Verbose).Verbose(fmt.Sprintf("Loading %v dataset...", source))
	var rd io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".xz") {
		if rd, err = xz.NewReader(rd); err != nil {
			return nil, xerrors.Errorf("bad xz stream %v (%v): %w", source, err.Error(), ErrInvalidInput)
		}
	}
	return l.Read(rd)
}

/*
Read tokenizes and loads records from the reader
*/
func (l Loader) Read(rd io.Reader) (*Dataset, error) {
	rows, err := Tokenize(rd)
	if err != nil {
		return nil, xerrors.Errorf("failed to read records (%v): %w", err.Error(), ErrInvalidInput)
	}
	return l.FromRows(rows)
}

/*
Query loads the result of the SQL query executed on the SQLite database file.
Column names are the header, values pass the same numeric coercion as text cells.
*/
func (l Loader) Query(dbfile string, query string) (*Dataset, error) {
	path := fu.DatasetPath(dbfile)
	if _, err := os.Stat(path); err != nil {
		return nil, xerrors.Errorf("received invalid database %v: %w", dbfile, ErrInvalidInput)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to open database %v: %v", dbfile, err.Error())
	}
	defer db.Close()
	rs, err := db.Query(query)
	if err != nil {
		return nil, zorros.Wrapf(err, "failed to query %v: %v", dbfile, err.Error())
	}
	defer rs.Close()
	cols, err := rs.Columns()
	if err != nil {
		return nil, zorros.Trace(err)
	}
	rows := [][]string{cols}
	vals := make([]sql.NullString, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rs.Next() {
		if err = rs.Scan(ptrs...); err != nil {
			return nil, zorros.Trace(err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		rows = append(rows, row)
	}
	if err = rs.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return l.FromRows(rows)
}

/*
FromRows builds the dataset from tokenized records, the first one is the header
*/
func (l Loader) FromRows(rows [][]string) (*Dataset, error) {
	log := model.LoggerOr(l.Verbose)
	testSize := fu.Fnzf(l.TestSize, DefaultTestSize)
	if l.TestSize == NoTest {
		testSize = 0
	}
	if testSize < 0 || testSize >= 1 {
		return nil, xerrors.Errorf("test size %v is out of [0,1): %w", testSize, ErrInvalidInput)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, xerrors.Errorf("no header: %w", ErrInvalidInput)
	}
	fields := len(rows[0])
	nr := len(rows) - 1
	if nr == 0 {
		return nil, xerrors.Errorf("no data rows: %w", ErrInvalidInput)
	}
	log.Verbose(fmt.Sprintf("Loaded %d X %d dataset", nr, fields))

	cells := make([][]float64, nr)
	for i, record := range rows[1:] {
		cells[i] = make([]float64, fields)
		for j := 0; j < fields && j < len(record); j++ {
			cells[i][j] = parseCell(record[j])
		}
	}
	data := mat.NewDense(nr, fields, fu.Flatnr(cells))
	if l.Shuffle {
		data = shuffleRows(data, l.rand())
	}

	ds := &Dataset{
		Header:   append([]string(nil), rows[0]...),
		Data:     data,
		Features: mat.NewDense(nr, fields, nil),
		Labels:   mat.NewVecDense(nr, mat.Col(nil, fields-1, data)),
	}
	for i := 0; i < nr; i++ {
		row := ds.Features.RawRowView(i)
		row[0] = 1
		copy(row[1:], data.RawRowView(i)[:fields-1])
	}
	testRows := int(math.Floor(float64(nr) * testSize))
	ds.split(nr - testRows)
	return ds, nil
}

func (l Loader) rand() *rand.Rand {
	seed := l.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func shuffleRows(m *mat.Dense, rng *rand.Rand) *mat.Dense {
	r, c := m.Dims()
	q := mat.NewDense(r, c, nil)
	for i, j := range rng.Perm(r) {
		q.SetRow(i, m.RawRowView(j))
	}
	return q
}

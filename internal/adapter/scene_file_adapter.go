package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// Connection kinds recorded in a scene file.
const (
	KindAttribute  = "attribute"
	KindInMesh     = "inMesh"
	KindBlendShape = "blendShape"
	KindWrap       = "wrap"
)

const lockRetryDelay = 50 * time.Millisecond

var transformAttributes = []string{
	"translateX", "translateY", "translateZ",
	"rotateX", "rotateY", "rotateZ",
	"scaleX", "scaleY", "scaleZ",
}

type sceneFile struct {
	Nodes        []sceneNodeDoc       `yaml:"nodes"`
	Selection    []string             `yaml:"selection,omitempty"`
	Sources      []string             `yaml:"sources,omitempty"`
	Destinations []string             `yaml:"destinations,omitempty"`
	Connections  []sceneConnectionDoc `yaml:"connections,omitempty"`
}

type sceneNodeDoc struct {
	Path       string     `yaml:"path"`
	Type       string     `yaml:"type"`
	Shape      string     `yaml:"shape,omitempty"`
	Points     []m.Vec3   `yaml:"points,omitempty,flow"`
	Bounds     *boundsDoc `yaml:"bounds,omitempty"`
	Referenced bool       `yaml:"referenced,omitempty"`
	Locked     []string   `yaml:"locked,omitempty,flow"`
}

type boundsDoc struct {
	Min m.Vec3 `yaml:"min,flow"`
	Max m.Vec3 `yaml:"max,flow"`
}

type sceneConnectionDoc struct {
	Kind        string `yaml:"kind"`
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Attribute   string `yaml:"attribute,omitempty"`
}

func (n sceneNodeDoc) toModel() m.SceneNode {
	node := m.SceneNode{
		Path:       n.Path,
		NodeType:   n.Type,
		ShapeType:  n.Shape,
		Points:     append([]m.Vec3(nil), n.Points...),
		Referenced: n.Referenced,
		Locked:     append([]string(nil), n.Locked...),
	}
	if n.Bounds != nil {
		node.Bounds = &m.BoundingBox{Min: n.Bounds.Min, Max: n.Bounds.Max}
	}

	return node
}

// SceneFileAdapter implements SceneAdapter over a YAML scene snapshot. Writes
// are guarded by an exclusive lock file next to the scene.
type SceneFileAdapter struct {
	path    string
	lock    *flock.Flock
	doc     *sceneFile
	inBatch bool
	logger  *slog.Logger
}

// NewSceneFileAdapter returns an adapter reading and writing the scene at path.
func NewSceneFileAdapter(path string, logger *slog.Logger) *SceneFileAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SceneFileAdapter{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}
}

// Path returns the scene file location.
func (a *SceneFileAdapter) Path() string {
	return a.path
}

func (a *SceneFileAdapter) document() (*sceneFile, error) {
	if a.doc != nil {
		return a.doc, nil
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", a.path, err)
	}

	var doc sceneFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", a.path, err)
	}

	a.doc = &doc

	return a.doc, nil
}

// Reload drops the cached document so the next call reads the file again.
func (a *SceneFileAdapter) Reload() {
	a.doc = nil
}

func (a *SceneFileAdapter) acquire(ctx context.Context) error {
	ok, err := a.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire scene lock: %w", err)
	}

	if !ok {
		return errors.New("scene file is locked by another process")
	}

	return nil
}

func (a *SceneFileAdapter) write() error {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(a.doc); err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(a.path), ".scene-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write scene file %s: %w", a.path, err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to write scene file %s: %w", a.path, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write scene file %s: %w", a.path, err)
	}

	if err := os.Rename(tmp.Name(), a.path); err != nil {
		return fmt.Errorf("failed to write scene file %s: %w", a.path, err)
	}

	return nil
}

// update runs fn on the scene document. Outside a batch the lock is taken
// and the file read again before fn runs, and the document is written when
// fn reports a change.
func (a *SceneFileAdapter) update(ctx context.Context, fn func() (bool, error)) error {
	if a.inBatch {
		_, err := fn()

		return err
	}

	if err := a.acquire(ctx); err != nil {
		return err
	}

	defer func() { _ = a.lock.Unlock() }()

	a.Reload()

	if _, err := a.document(); err != nil {
		return err
	}

	changed, err := fn()
	if err != nil || !changed {
		return err
	}

	return a.write()
}

func (a *SceneFileAdapter) find(path string) (*sceneNodeDoc, bool) {
	for i := range a.doc.Nodes {
		if a.doc.Nodes[i].Path == path {
			return &a.doc.Nodes[i], true
		}
	}

	return nil, false
}

// Selection returns the selected mesh transforms.
func (a *SceneFileAdapter) Selection(ctx context.Context) ([]m.SceneNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := a.document(); err != nil {
		return nil, err
	}

	nodes := make([]m.SceneNode, 0, len(a.doc.Selection))

	for _, path := range a.doc.Selection {
		doc, ok := a.find(path)
		if !ok {
			a.logger.Debug("selected node missing from scene", "path", path)

			continue
		}

		node := doc.toModel()
		if !node.IsMeshTransform() {
			continue
		}

		nodes = append(nodes, node)
	}

	return nodes, nil
}

// SavedSelection returns the paths stored for role in the scene file.
func (a *SceneFileAdapter) SavedSelection(role m.Role) ([]string, error) {
	if _, err := a.document(); err != nil {
		return nil, err
	}

	if role == m.RoleSource {
		return append([]string(nil), a.doc.Sources...), nil
	}

	return append([]string(nil), a.doc.Destinations...), nil
}

// Node returns the node at path.
func (a *SceneFileAdapter) Node(ctx context.Context, path string) (m.SceneNode, error) {
	if err := ctx.Err(); err != nil {
		return m.SceneNode{}, err
	}

	if _, err := a.document(); err != nil {
		return m.SceneNode{}, err
	}

	doc, ok := a.find(path)
	if !ok {
		return m.SceneNode{}, fmt.Errorf("%w: %s", m.ErrNodeNotFound, path)
	}

	return doc.toModel(), nil
}

// DisplayName returns the shortest path suffix that names path uniquely.
func (a *SceneFileAdapter) DisplayName(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := a.document(); err != nil {
		return "", err
	}

	if _, ok := a.find(path); !ok {
		return "", fmt.Errorf("%w: %s", m.ErrNodeNotFound, path)
	}

	all := make([]string, 0, len(a.doc.Nodes))
	for _, node := range a.doc.Nodes {
		all = append(all, node.Path)
	}

	return ShortestUniqueName(path, all), nil
}

// ShortestUniqueName returns the smallest trailing run of path segments that
// no other path in all ends with.
func ShortestUniqueName(path string, all []string) string {
	segments := splitPath(path)

	for k := 1; k <= len(segments); k++ {
		suffix := strings.Join(segments[len(segments)-k:], "|")

		unique := true

		for _, other := range all {
			if other != path && hasPathSuffix(other, suffix) {
				unique = false

				break
			}
		}

		if unique {
			return suffix
		}
	}

	return path
}

func splitPath(path string) []string {
	var segments []string

	for _, s := range strings.Split(path, "|") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	return segments
}

func hasPathSuffix(path, suffix string) bool {
	return strings.TrimPrefix(path, "|") == suffix || strings.HasSuffix(path, "|"+suffix)
}

// Select replaces the scene selection with paths.
func (a *SceneFileAdapter) Select(ctx context.Context, paths []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return a.update(ctx, func() (bool, error) {
		if _, err := a.document(); err != nil {
			return false, err
		}

		for _, path := range paths {
			if _, ok := a.find(path); !ok {
				return false, fmt.Errorf("%w: %s", m.ErrNodeNotFound, path)
			}
		}

		a.doc.Selection = append([]string(nil), paths...)

		return true, nil
	})
}

// Begin reloads the scene and holds the file lock until Commit.
func (a *SceneFileAdapter) Begin(ctx context.Context) error {
	if a.inBatch {
		return errors.New("realization batch already open")
	}

	if err := a.acquire(ctx); err != nil {
		return err
	}

	a.Reload()

	if _, err := a.document(); err != nil {
		_ = a.lock.Unlock()

		return err
	}

	a.inBatch = true

	return nil
}

// Commit writes the scene and releases the lock.
func (a *SceneFileAdapter) Commit(_ context.Context) error {
	if !a.inBatch {
		return errors.New("no realization batch open")
	}

	a.inBatch = false

	defer func() { _ = a.lock.Unlock() }()

	return a.write()
}

// Apply realises r in the scene document.
func (a *SceneFileAdapter) Apply(ctx context.Context, r m.Realization) (m.ConnectStatus, error) {
	if err := ctx.Err(); err != nil {
		return m.StatusError, err
	}

	var status m.ConnectStatus

	err := a.update(ctx, func() (bool, error) {
		var err error

		status, err = a.apply(r)

		return status == m.StatusApplied, err
	})
	if err != nil {
		if status != m.StatusConflict {
			status = m.StatusError
		}

		return status, err
	}

	if status == m.StatusApplied {
		a.logger.Debug("pair realised", "source", r.Source.FullPath, "destination", r.Destination.FullPath, "mode", r.Mode)
	}

	return status, nil
}

func (a *SceneFileAdapter) apply(r m.Realization) (m.ConnectStatus, error) {
	if _, err := a.document(); err != nil {
		return m.StatusError, err
	}

	source, ok := a.find(r.Source.FullPath)
	if !ok {
		return m.StatusError, fmt.Errorf("%w: %s", m.ErrNodeNotFound, r.Source.FullPath)
	}

	destination, ok := a.find(r.Destination.FullPath)
	if !ok {
		return m.StatusError, fmt.Errorf("%w: %s", m.ErrNodeNotFound, r.Destination.FullPath)
	}

	if err := checkLocks(destination, r); err != nil {
		return m.StatusConflict, err
	}

	sourcePath, destinationPath := source.Path, destination.Path

	if r.Mode == m.ConnectParent && strings.HasPrefix(sourcePath, destinationPath+"|") {
		return m.StatusConflict, fmt.Errorf("%w: %s is below %s", m.ErrParentCycle, sourcePath, destinationPath)
	}

	changed := false

	if r.InheritVisibility {
		changed = a.connectAttribute(sourcePath, destination, "visibility") || changed
	}

	if r.InheritTransform {
		for _, attribute := range transformAttributes {
			changed = a.connectAttribute(sourcePath, destination, attribute) || changed
		}
	}

	switch r.Mode {
	case m.ConnectInMeshOutMesh:
		changed = a.connectWorldMesh(sourcePath, destinationPath) || changed
	case m.ConnectBlendShape:
		changed = a.makeBlendShape(sourcePath, destination) || changed
	case m.ConnectWrap:
		changed = a.addConnection(KindWrap, sourcePath, destinationPath, "") || changed
	case m.ConnectParent:
		changed = a.reparent(destinationPath, sourcePath) || changed
	default:
		return m.StatusError, fmt.Errorf("%w: connection mode %d", m.ErrUnknownMode, int(r.Mode))
	}

	if !changed {
		return m.StatusSkipped, nil
	}

	return m.StatusApplied, nil
}

// checkLocks rejects a realization that would touch a locked attribute of a
// referenced destination. It runs before any change so a conflict leaves the
// scene untouched.
func checkLocks(destination *sceneNodeDoc, r m.Realization) error {
	if !destination.Referenced {
		return nil
	}

	var attributes []string

	if r.InheritVisibility {
		attributes = append(attributes, "visibility")
	}

	if r.InheritTransform || r.Mode == m.ConnectBlendShape {
		attributes = append(attributes, transformAttributes...)
	}

	if r.Mode == m.ConnectInMeshOutMesh {
		attributes = append(attributes, "inMesh")
	}

	node := destination.toModel()
	for _, attribute := range attributes {
		if node.IsLocked(attribute) {
			return fmt.Errorf("%w: %s.%s", m.ErrLockedAttribute, destination.Path, attribute)
		}
	}

	return nil
}

func (a *SceneFileAdapter) hasConnection(kind, source, destination, attribute string) bool {
	for _, c := range a.doc.Connections {
		if c.Kind == kind && c.Source == source && c.Destination == destination && c.Attribute == attribute {
			return true
		}
	}

	return false
}

func (a *SceneFileAdapter) addConnection(kind, source, destination, attribute string) bool {
	if a.hasConnection(kind, source, destination, attribute) {
		return false
	}

	a.doc.Connections = append(a.doc.Connections, sceneConnectionDoc{
		Kind:        kind,
		Source:      source,
		Destination: destination,
		Attribute:   attribute,
	})

	return true
}

func (a *SceneFileAdapter) connectAttribute(source string, destination *sceneNodeDoc, attribute string) bool {
	if !a.addConnection(KindAttribute, source, destination.Path, attribute) {
		return false
	}

	unlock(destination, attribute)

	return true
}

func (a *SceneFileAdapter) connectWorldMesh(source, destination string) bool {
	for _, c := range a.doc.Connections {
		if c.Kind == KindBlendShape && c.Destination == destination {
			return false
		}
	}

	return a.addConnection(KindInMesh, source, destination, "")
}

func (a *SceneFileAdapter) makeBlendShape(source string, destination *sceneNodeDoc) bool {
	if !a.addConnection(KindBlendShape, source, destination.Path, "") {
		return false
	}

	for _, attribute := range transformAttributes {
		unlock(destination, attribute)
	}

	return true
}

func unlock(node *sceneNodeDoc, attribute string) {
	kept := node.Locked[:0]

	for _, locked := range node.Locked {
		if locked != attribute {
			kept = append(kept, locked)
		}
	}

	node.Locked = kept
}

func (a *SceneFileAdapter) reparent(child, parent string) bool {
	if child[:max(strings.LastIndex(child, "|"), 0)] == parent {
		return false
	}

	leaf := child[strings.LastIndex(child, "|")+1:]
	newPath := parent + "|" + leaf

	rename := func(path string) string {
		if path == child {
			return newPath
		}

		if strings.HasPrefix(path, child+"|") {
			return newPath + path[len(child):]
		}

		return path
	}

	for i := range a.doc.Nodes {
		a.doc.Nodes[i].Path = rename(a.doc.Nodes[i].Path)
	}

	for i := range a.doc.Connections {
		a.doc.Connections[i].Source = rename(a.doc.Connections[i].Source)
		a.doc.Connections[i].Destination = rename(a.doc.Connections[i].Destination)
	}

	for _, list := range [][]string{a.doc.Selection, a.doc.Sources, a.doc.Destinations} {
		for i := range list {
			list[i] = rename(list[i])
		}
	}

	return true
}

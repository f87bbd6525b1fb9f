package model

// SceneNode describes one host scene transform node as read by a scene
// adapter.
type SceneNode struct {
	Path       string
	NodeType   string
	ShapeType  string
	Points     []Vec3
	Bounds     *BoundingBox
	Referenced bool
	Locked     []string
}

// IsMeshTransform reports whether the node is a transform carrying a mesh.
func (n SceneNode) IsMeshTransform() bool {
	return n.NodeType == "transform" && n.ShapeType == "mesh"
}

// IsLocked reports whether attribute is locked on the node.
func (n SceneNode) IsLocked(attribute string) bool {
	for _, locked := range n.Locked {
		if locked == attribute {
			return true
		}
	}

	return false
}

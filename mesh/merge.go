package mesh

import "github.com/blackjack3d/meshkit/channel"

// mergeGroup copies every channel of src into dst by name (creating
// absent channels with the source's default), remapping each key via
// idMap. Channels present only in dst are preserved untouched,
// matching spec.md §4.3's merge_with contract.
func mergeGroup[K comparable, V any](dst, src *channel.Group[K, V], srcKeys []K, idMap map[K]K) {
	for _, name := range src.Names() {
		srcID, _ := src.Lookup(name)
		srcRead, err := src.Read(srcID)
		if err != nil {
			continue
		}

		dstID := dst.Ensure(name, srcRead.Default())
		dstWrite, err := dst.Write(dstID)
		if err != nil {
			srcRead.Release()
			continue
		}

		for _, k := range srcKeys {
			if v, ok := srcRead.TryGet(k); ok {
				dstWrite.Set(idMap[k], v)
			}
		}

		dstWrite.Release()
		srcRead.Release()
	}
}

// MergeWith copies every channel of other into mc, remapping keys
// through the supplied per-kind maps (spec.md §4.3). Channel data
// already in mc under a name not present in other is left untouched.
func (mc MeshChannels) MergeWith(other MeshChannels, vertexKeys []VertexID, faceKeys []FaceID, halfEdgeKeys []HalfEdgeID,
	vertexMap map[VertexID]VertexID, faceMap map[FaceID]FaceID, halfEdgeMap map[HalfEdgeID]HalfEdgeID) {
	mergeGroup(mc.VertexVec3, other.VertexVec3, vertexKeys, vertexMap)
	mergeGroup(mc.VertexF32, other.VertexF32, vertexKeys, vertexMap)
	mergeGroup(mc.VertexBool, other.VertexBool, vertexKeys, vertexMap)
	mergeGroup(mc.FaceVec3, other.FaceVec3, faceKeys, faceMap)
	mergeGroup(mc.FaceF32, other.FaceF32, faceKeys, faceMap)
	mergeGroup(mc.FaceBool, other.FaceBool, faceKeys, faceMap)
	mergeGroup(mc.HalfEdgeVec3, other.HalfEdgeVec3, halfEdgeKeys, halfEdgeMap)
	mergeGroup(mc.HalfEdgeF32, other.HalfEdgeF32, halfEdgeKeys, halfEdgeMap)
	mergeGroup(mc.HalfEdgeBool, other.HalfEdgeBool, halfEdgeKeys, halfEdgeMap)
}
